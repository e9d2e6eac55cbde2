package models

import "time"

// Role is the single claim a connection makes about itself.
type Role string

const (
	RoleNone    Role = ""
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// TeacherSender is the chat display name used for teacher messages.
const TeacherSender = "Teacher"

// Domain types

type PollOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type Poll struct {
	ID        string       `json:"id"`
	Question  string       `json:"question"`
	Options   []PollOption `json:"options"`
	TimeLimit int          `json:"timeLimit"` // seconds
	IsActive  bool         `json:"isActive"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Clone returns a deep copy so broadcast payloads never alias session state.
func (p *Poll) Clone() *Poll {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Options = make([]PollOption, len(p.Options))
	copy(cp.Options, p.Options)
	return &cp
}

// Option returns the option with the given id, or nil.
func (p *Poll) Option(id string) *PollOption {
	for i := range p.Options {
		if p.Options[i].ID == id {
			return &p.Options[i]
		}
	}
	return nil
}

// TotalVotes sums votes across all options.
func (p *Poll) TotalVotes() int {
	total := 0
	for _, opt := range p.Options {
		total += opt.Votes
	}
	return total
}

type Student struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	HasAnswered bool      `json:"hasAnswered"`
	Answer      *string   `json:"answer"`
	JoinedAt    time.Time `json:"joinedAt"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	IsTeacher bool      `json:"isTeacher"`
}

// Response types

// StatusSnapshot is the read-only view served by GET /api/polls.
type StatusSnapshot struct {
	Polls         []Poll    `json:"polls"`
	CurrentPoll   *Poll     `json:"currentPoll"`
	Students      []Student `json:"students"`
	CanCreatePoll bool      `json:"canCreatePoll"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Uptime  string `json:"uptime"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
