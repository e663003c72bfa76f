// Package comments maintains the comment forest for a single article.
//
// Nodes are kept in an arena keyed by id with a separate parent-to-children
// order map, rather than as literally nested structs; the nested reply view
// callers render is reconstructed on read. Ids come from a monotonic counter
// seeded past the largest seed id, so rapid successive inserts cannot
// collide.
package comments

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/blog-platform-api/internal/models"
)

var (
	// ErrBlankContent is returned when a comment body is empty after
	// trimming whitespace.
	ErrBlankContent = errors.New("comment content is blank")

	// ErrParentNotFound is returned when a reply targets an id that is not
	// in the thread. The thread is left unchanged.
	ErrParentNotFound = errors.New("parent comment not found")
)

// Thread is the comment forest for one article. Safe for concurrent use.
type Thread struct {
	mu        sync.RWMutex
	articleID int
	nodes     map[int]*models.Comment
	children  map[int][]int
	roots     []int
	nextID    int
}

// NewThread builds a thread from an already-nested seed forest. Seed nodes
// are copied into the arena; the input is not retained.
func NewThread(articleID int, seed []*models.Comment) *Thread {
	t := &Thread{
		articleID: articleID,
		nodes:     make(map[int]*models.Comment),
		children:  make(map[int][]int),
		nextID:    1,
	}
	for _, c := range seed {
		t.ingest(c, nil)
	}
	return t
}

// ingest registers a seed node and, recursively, its replies.
func (t *Thread) ingest(c *models.Comment, parentID *int) {
	node := *c
	node.ParentID = parentID
	node.Replies = nil
	t.nodes[node.ID] = &node

	if parentID == nil {
		t.roots = append(t.roots, node.ID)
	} else {
		t.children[*parentID] = append(t.children[*parentID], node.ID)
	}
	if node.ID >= t.nextID {
		t.nextID = node.ID + 1
	}
	for _, reply := range c.Replies {
		id := node.ID
		t.ingest(reply, &id)
	}
}

// AddRoot creates a new top-level comment and prepends it to the root
// order, so the newest root renders first.
func (t *Thread) AddRoot(content, author string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrBlankContent
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.newNode(content, author, nil)
	t.roots = append([]int{node.ID}, t.roots...)
	return t.view(node.ID), nil
}

// AddReply creates a comment under the parent with the given id, at any
// depth, appended after the parent's existing replies. A missing parent
// leaves the thread unchanged.
func (t *Thread) AddReply(parentID int, content, author string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrBlankContent
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.nodes[parentID]; !ok {
		return nil, ErrParentNotFound
	}

	node := t.newNode(content, author, &parentID)
	t.children[parentID] = append(t.children[parentID], node.ID)
	return t.view(node.ID), nil
}

// newNode allocates a comment in the arena. Caller holds the lock.
func (t *Thread) newNode(content, author string, parentID *int) *models.Comment {
	node := &models.Comment{
		ID:        t.nextID,
		Content:   content,
		Author:    author,
		ArticleID: t.articleID,
		CreatedAt: time.Now().UTC(),
		ParentID:  parentID,
	}
	t.nextID++
	t.nodes[node.ID] = node
	return node
}

// Roots returns every parentless comment with its full reply subtree
// reconstructed, in stored root order (newest added root first).
func (t *Thread) Roots() []*models.Comment {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*models.Comment, 0, len(t.roots))
	for _, id := range t.roots {
		out = append(out, t.view(id))
	}
	return out
}

// Get returns the comment with the given id and its reply subtree.
func (t *Thread) Get(id int) (*models.Comment, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if _, ok := t.nodes[id]; !ok {
		return nil, false
	}
	return t.view(id), true
}

// Len returns the total number of comments in the thread, replies included.
func (t *Thread) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.nodes)
}

// view reconstructs the nested form of a subtree. Caller holds the lock.
func (t *Thread) view(id int) *models.Comment {
	node := *t.nodes[id]
	node.Replies = make([]*models.Comment, 0, len(t.children[id]))
	for _, childID := range t.children[id] {
		node.Replies = append(node.Replies, t.view(childID))
	}
	return &node
}
