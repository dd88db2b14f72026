package model

// Todo is a task record as served by GET /todos.
// Values are never mutated after decoding; identity is ID.
type Todo struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// UserSummary keeps only the user fields the screen needs.
// The /users payload carries a lot more (address, company...), all ignored.
type UserSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// CompletionLabel is the human-readable status shown on each card.
func CompletionLabel(completed bool) string {
	if completed {
		return "Complete"
	}
	return "Uncomplete"
}

// Stats counts completed and open todos.
func Stats(todos []Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
