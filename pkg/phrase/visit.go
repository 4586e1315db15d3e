package phrase

// Action tells Traverse how to proceed after a callback.
type Action uint8

const (
	// Continue descends into the children of the node (preorder) or moves on (postorder).
	Continue Action = iota
	// SkipChildren does not descend; the postorder callback still runs for the node.
	SkipChildren
	// Stop ends the traversal. No further callbacks are made.
	Stop
)

func (a Action) String() string {
	switch a {
	case Continue:
		return "continue"
	case SkipChildren:
		return "skip-children"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Visitor receives every node of a tree in document order.
//
// The spine holds the ancestors of the node, root first. It is only valid for the
// duration of the call.
type Visitor interface {
	Preorder(n Node, spine []*Phrase) Action
	Postorder(n Node, spine []*Phrase) Action
}

// Traverse walks the tree rooted at root depth first, calling Preorder before the
// children of a node and Postorder after them. It returns false if a callback
// returned Stop.
func Traverse(root Node, v Visitor) bool {
	if root == nil {
		return true
	}
	spine := make([]*Phrase, 0, 32)
	return walk(root, &spine, v)
}

func walk(n Node, spine *[]*Phrase, v Visitor) bool {
	switch v.Preorder(n, *spine) {
	case Stop:
		return false
	case Continue:
		if p, ok := n.(*Phrase); ok {
			*spine = append(*spine, p)
			for _, child := range p.Children {
				if !walk(child, spine, v) {
					*spine = (*spine)[:len(*spine)-1]
					return false
				}
			}
			*spine = (*spine)[:len(*spine)-1]
		}
	}
	return v.Postorder(n, *spine) != Stop
}

// VisitorFuncs adapts a pair of functions to the Visitor interface. A nil function
// always returns Continue.
type VisitorFuncs struct {
	Pre  func(n Node, spine []*Phrase) Action
	Post func(n Node, spine []*Phrase) Action
}

// Preorder implements Visitor
func (f VisitorFuncs) Preorder(n Node, spine []*Phrase) Action {
	if f.Pre == nil {
		return Continue
	}
	return f.Pre(n, spine)
}

// Postorder implements Visitor
func (f VisitorFuncs) Postorder(n Node, spine []*Phrase) Action {
	if f.Post == nil {
		return Continue
	}
	return f.Post(n, spine)
}
