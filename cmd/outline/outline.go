package main

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/outlinekit/forest"
)

// item is the payload carried by every outline node. Titles may repeat,
// so each node gets a stable id at load time and the id is the key the
// cursor engine addresses nodes by.
type item struct {
	id    int
	title string
}

func itemID(it item) int { return it.id }

// node is the on-disk shape of one outline entry.
type node struct {
	Title    string `yaml:"title"`
	Children []node `yaml:"children,omitempty"`
}

func loadOutline(path string) (forest.Forest[item], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var nodes []node
	if err := yaml.Unmarshal(raw, &nodes); err != nil {
		return nil, err
	}
	nextID := 0
	return toForest(nodes, &nextID), nil
}

func saveOutline(path string, f forest.Forest[item]) error {
	raw, err := yaml.Marshal(toNodes(f))
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func toForest(nodes []node, nextID *int) forest.Forest[item] {
	f := make(forest.Forest[item], 0, len(nodes))
	for _, n := range nodes {
		it := item{id: *nextID, title: n.Title}
		*nextID++
		f = append(f, forest.Tree[item]{Value: it, Children: toForest(n.Children, nextID)})
	}
	return f
}

func toNodes(f forest.Forest[item]) []node {
	if len(f) == 0 {
		return nil
	}
	out := make([]node, 0, len(f))
	for _, t := range f {
		out = append(out, node{Title: t.Value.title, Children: toNodes(t.Children)})
	}
	return out
}
