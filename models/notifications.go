// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Notification event names (server -> client)
const (
	EvtTeacherConnected = "teacher-connected"
	EvtStudentConnected = "student-connected"
	EvtPollStarted      = "poll-started"
	EvtPollUpdated      = "poll-updated"
	EvtPollEnded        = "poll-ended"
	EvtStudentJoined    = "student-joined"
	EvtStudentLeft      = "student-left"
	EvtStudentRemoved   = "student-removed"
	EvtStudentsUpdated  = "students-updated"
	EvtStudentAnswered  = "student-answered"
	EvtChatMessage      = "chat-message"
	EvtNameExists       = "name-exists"
	EvtKickedOut        = "kicked-out"
	EvtCommandRejected  = "command-rejected"
)

// RejectReason explains why a command changed nothing. Empty means accepted.
type RejectReason string

const (
	ReasonNone              RejectReason = ""
	ReasonInvalidRole       RejectReason = "invalid role"
	ReasonRoleAlreadySet    RejectReason = "role already selected"
	ReasonWrongRole         RejectReason = "command not allowed for role"
	ReasonRemoved           RejectReason = "connection was removed"
	ReasonAlreadyRegistered RejectReason = "name already registered"
	ReasonNotRegistered     RejectReason = "name not registered"
	ReasonInvalidName       RejectReason = "invalid name"
	ReasonNameTaken         RejectReason = "name already taken"
	ReasonInvalidPoll       RejectReason = "invalid poll"
	ReasonNoActivePoll      RejectReason = "no active poll"
	ReasonAlreadyAnswered   RejectReason = "already answered"
	ReasonUnknownOption     RejectReason = "unknown option"
	ReasonUnknownStudent    RejectReason = "unknown student"
	ReasonInvalidMessage    RejectReason = "invalid message"
)

// Notification is the closed set of events the coordinator emits.
type Notification interface {
	Event() string
	Payload() interface{}
}

type TeacherConnected struct {
	Polls        []Poll        `json:"polls"`
	Students     []Student     `json:"students"`
	CurrentPoll  *Poll         `json:"currentPoll"`
	ChatMessages []ChatMessage `json:"chatMessages"`
}

type StudentConnected struct {
	CurrentPoll *Poll     `json:"currentPoll"`
	Students    []Student `json:"students"`
}

type PollStarted struct{ Poll *Poll }
type PollUpdated struct{ Poll *Poll }
type PollEnded struct{ Poll *Poll }

type StudentJoined struct{ Student Student }

type StudentLeft struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
}

type StudentRemoved struct {
	StudentID string `json:"studentId"`
}

type StudentsUpdated struct{ Students []Student }

type StudentAnswered struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
}

type ChatPosted struct{ Message ChatMessage }

type NameExists struct {
	Message string `json:"message"`
}

type KickedOut struct{}

type CommandRejected struct {
	Command string       `json:"command"`
	Reason  RejectReason `json:"reason"`
}

func (TeacherConnected) Event() string { return EvtTeacherConnected }
func (StudentConnected) Event() string { return EvtStudentConnected }
func (PollStarted) Event() string      { return EvtPollStarted }
func (PollUpdated) Event() string      { return EvtPollUpdated }
func (PollEnded) Event() string        { return EvtPollEnded }
func (StudentJoined) Event() string    { return EvtStudentJoined }
func (StudentLeft) Event() string      { return EvtStudentLeft }
func (StudentRemoved) Event() string   { return EvtStudentRemoved }
func (StudentsUpdated) Event() string  { return EvtStudentsUpdated }
func (StudentAnswered) Event() string  { return EvtStudentAnswered }
func (ChatPosted) Event() string       { return EvtChatMessage }
func (NameExists) Event() string       { return EvtNameExists }
func (KickedOut) Event() string        { return EvtKickedOut }
func (CommandRejected) Event() string  { return EvtCommandRejected }

func (n TeacherConnected) Payload() interface{} { return n }
func (n StudentConnected) Payload() interface{} { return n }
func (n PollStarted) Payload() interface{}      { return n.Poll }
func (n PollUpdated) Payload() interface{}      { return n.Poll }
func (n PollEnded) Payload() interface{}        { return n.Poll }
func (n StudentJoined) Payload() interface{}    { return n.Student }
func (n StudentLeft) Payload() interface{}      { return n }
func (n StudentRemoved) Payload() interface{}   { return n }
func (n StudentsUpdated) Payload() interface{}  { return n.Students }
func (n StudentAnswered) Payload() interface{}  { return n }
func (n ChatPosted) Payload() interface{}       { return n.Message }
func (n NameExists) Payload() interface{}       { return n }
func (n KickedOut) Payload() interface{}        { return struct{}{} }
func (n CommandRejected) Payload() interface{}  { return n }

// Envelope is the JSON frame written to a websocket.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Wrap turns a notification into its wire frame.
func Wrap(n Notification) Envelope {
	return Envelope{Type: n.Event(), Data: n.Payload()}
}
