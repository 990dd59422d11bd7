package paths

// None marks a vertex without a predecessor: a traversal source, or a
// vertex the traversal never reached.
const None = -1

// Tree is a predecessor tree indexed by vertex: Tree[v] is the vertex
// from which v was first reached, or None.
type Tree []int

// NewTree returns a Tree of the given order with every entry None.
func NewTree(order int) Tree {
	t := make(Tree, order)
	for v := range t {
		t[v] = None
	}

	return t
}

// Search walks the predecessor chain from s and returns the path from s
// to target in visit order (s first, target last), or (nil, false) if
// the chain ends or cycles before reaching target.
func (t Tree) Search(s, target int) ([]int, bool) {
	return t.SearchBy(s, func(v int) bool { return v == target })
}

// SearchBy walks the predecessor chain from s until isTarget is
// satisfied. If isTarget(s) holds, the single-element path [s] is
// returned without traversal. Otherwise each predecessor is appended in
// the order visited; the walk fails with (nil, false) when a vertex has
// no predecessor or when a vertex repeats (predecessor cycle).
func (t Tree) SearchBy(s int, isTarget func(v int) bool) ([]int, bool) {
	if isTarget(s) {
		return []int{s}, true
	}

	visited := make(map[int]bool, len(t))
	visited[s] = true
	path := []int{s}
	for cur := s; ; {
		pred := t[cur]
		if pred == None || visited[pred] {
			return nil, false
		}
		path = append(path, pred)
		if isTarget(pred) {
			return path, true
		}
		visited[pred] = true
		cur = pred
	}
}
