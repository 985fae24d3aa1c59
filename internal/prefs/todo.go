package prefs

import (
	"strconv"
	"time"
)

// TodoItem is one entry of the device-local todo list.
type TodoItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func defaultTodos() []TodoItem {
	return []TodoItem{
		{ID: "1", Text: "Finish the blog features", Completed: false},
		{ID: "2", Text: "Write a technical article", Completed: false},
	}
}

// Todos returns a copy of the todo list.
func (s *Store) Todos() []TodoItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]TodoItem(nil), s.todos...)
}

// AddTodo appends a todo with a millisecond timestamp id, matching the ids
// the web client generates.
func (s *Store) AddTodo(text string) (TodoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := TodoItem{
		ID:   strconv.FormatInt(time.Now().UnixMilli(), 10),
		Text: text,
	}

	s.todos = append(s.todos, item)

	return item, s.persist(keyTodos, s.todos)
}

// ToggleTodo flips the completed state of one todo. Unknown ids are ignored.
func (s *Store) ToggleTodo(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Completed = !s.todos[i].Completed
			break
		}
	}

	return s.persist(keyTodos, s.todos)
}

// RemoveTodo deletes one todo by id.
func (s *Store) RemoveTodo(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.todos[:0]

	for _, item := range s.todos {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	s.todos = kept

	return s.persist(keyTodos, s.todos)
}
