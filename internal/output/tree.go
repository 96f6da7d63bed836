package output

import (
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// DescriptionColumn is the column at which file descriptions start.
	DescriptionColumn = 30
)

// FileEntry is one file in a tree listing.
type FileEntry struct {
	// Path is slash-separated and relative to the tree root.
	Path        string
	Description string
}

// TreeNode represents a node in the file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// BuildTree assembles entries into a tree rooted at rootName. Directories
// sort before files, then alphabetically.
func BuildTree(rootName string, entries []FileEntry) *TreeNode {
	root := &TreeNode{Name: rootName, IsDir: true}

	for _, e := range entries {
		parts := strings.Split(strings.Trim(e.Path, "/"), "/")
		current := root

		for i, part := range parts {
			if part == "" {
				continue
			}
			isLast := i == len(parts)-1

			var child *TreeNode
			for _, c := range current.Children {
				if c.Name == part {
					child = c
					break
				}
			}
			if child == nil {
				child = &TreeNode{Name: part, IsDir: !isLast}
				current.Children = append(current.Children, child)
			}
			if isLast {
				child.Description = e.Description
			}
			current = child
		}
	}

	sortTree(root)
	return root
}

// RenderFileTree renders entries as a tree with descriptions aligned at
// DescriptionColumn.
func RenderFileTree(rootName string, entries []FileEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder
	renderNode(&sb, BuildTree(rootName, entries), "", true, true)
	return sb.String()
}

func sortTree(node *TreeNode) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		sortTree(child)
	}
}

func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		sb.WriteString(StyleSummary.Render(node.Name + "/"))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		name := node.Name
		if node.IsDir {
			name += "/"
		}
		line := prefix + connector + name

		if node.Description != "" {
			padding := DescriptionColumn - displayWidth(line)
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding) + StyleDim.Render(node.Description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, child := range node.Children {
		childPrefix := ""
		if !isRoot {
			if isLast {
				childPrefix = prefix + treeSpace
			} else {
				childPrefix = prefix + treeVert
			}
		}
		renderNode(sb, child, childPrefix, false, i == len(node.Children)-1)
	}
}

// displayWidth counts runes so box-drawing characters occupy one column.
func displayWidth(s string) int {
	return len([]rune(s))
}
