package ordtree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T comparable] struct {
	idTable map[T]int
	max     int
}

func newtable[T comparable]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[T]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(n T) int {
	if id, ok := ids.idTable[n]; ok {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot writes the structure of t in Graphviz DOT format, for debugging.
// Absent children are drawn as small empty circles.
func (t *Tree[T]) Dot(w io.Writer) error {
	ids := newtable[*node[T]]()
	var nodelist, edgelist strings.Builder
	empty := 0
	var each func(n *node[T]) int
	each = func(n *node[T]) int {
		id := ids.alloc(n)
		fmt.Fprintf(&nodelist, "\"%d\" [label=%q%s];\n", id, fmt.Sprint(n.value), nodeDotStyles(n.isLeaf()))
		for _, child := range [2]*node[T]{n.left, n.right} {
			if child == nil {
				if n.isLeaf() {
					continue
				}
				empty++
				fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", empty, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", id, empty)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", id, each(child))
		}
		return id
	}
	if t.root != nil {
		each(t.root)
	}
	_, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+edgelist.String()+"}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box,fillcolor=\"#CCDDFF\""
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}
