package feedback

import "time"

type Feedback struct {
	ID        string
	Name      string
	Email     *string
	Message   string
	Rating    int // 1-5
	CreatedAt time.Time
}
