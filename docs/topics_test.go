package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestGetTopics(t *testing.T) {
	doc, err := GetTopics("fifo", "oversell")
	if err != nil {
		t.Fatalf("GetTopics() unexpected error: %v", err)
	}
	if !strings.Contains(doc, "FIFO") || !strings.Contains(doc, "Oversell") {
		t.Errorf("GetTopics() missing expected content:\n%s", doc)
	}

	if _, err := GetTopic("nonexistent"); err == nil {
		t.Error("GetTopic() expected an error for an unknown topic")
	}
}

// TestTopicsStructure parses every topic and checks it is a well-formed
// page: exactly one level-1 heading, placed first.
func TestTopicsStructure(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error: %v", err)
	}
	topics = append(topics, "readme")

	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("GetTopic(%q) unexpected error: %v", topic, err)
			}
			source := []byte(content)

			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			var titles int
			first := true
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok {
					if h.Level == 1 {
						titles++
						if !first {
							t.Errorf("topic %q: level-1 heading is not the first block", topic)
						}
					}
				}
				if _, isDoc := n.(*ast.Document); !isDoc {
					first = false
				}
				return ast.WalkContinue, nil
			})

			if titles != 1 {
				t.Errorf("topic %q has %d level-1 headings, want exactly 1", topic, titles)
			}
		})
	}
}
