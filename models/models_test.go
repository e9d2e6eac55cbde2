// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Command
	}{
		{"select role", `{"type":"select-role","data":{"role":"teacher"}}`, SelectRole{Role: RoleTeacher}},
		{"register name", `{"type":"register-name","data":{"name":"Alice"}}`, RegisterName{Name: "Alice"}},
		{"student-name alias", `{"type":"student-name","data":{"name":"Alice"}}`, RegisterName{Name: "Alice"}},
		{
			"create poll",
			`{"type":"create-poll","data":{"question":"Best color?","options":["Red","Blue"],"timeLimit":30}}`,
			CreatePoll{Question: "Best color?", Options: []string{"Red", "Blue"}, TimeLimit: 30},
		},
		{"submit answer", `{"type":"submit-answer","data":{"optionId":"option-1"}}`, SubmitAnswer{OptionID: "option-1"}},
		{"end poll without data", `{"type":"end-poll"}`, EndPoll{}},
		{"end poll with data", `{"type":"end-poll","data":{"ignored":true}}`, EndPoll{}},
		{"remove student", `{"type":"remove-student","data":{"studentId":"abc"}}`, RemoveStudent{StudentID: "abc"}},
		{"send chat", `{"type":"send-chat","data":{"message":"hi"}}`, SendChat{Message: "hi"}},
		{"chat-message alias", `{"type":"chat-message","data":{"message":"hi"}}`, SendChat{Message: "hi"}},
		{"null data", `{"type":"register-name","data":null}`, RegisterName{}},
		{"unknown fields", `{"type":"send-chat","data":{"message":"hi","sender":"Teacher"}}`, SendChat{Message: "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCommand([]byte(tt.raw))
			if err != nil {
				t.Fatalf("DecodeCommand() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeCommand() = %#v, want %#v", got, tt.want)
			}
			if got.Kind() != tt.want.Kind() {
				t.Errorf("Kind() = %q, want %q", got.Kind(), tt.want.Kind())
			}
		})
	}
}

func TestRegisterName_NameField(t *testing.T) {
	cmd, err := DecodeCommand([]byte(`{"type":"register-name","data":{"name":"Alice"}}`))
	if err != nil {
		t.Fatalf("DecodeCommand() error = %v", err)
	}
	if cmd.Kind() != CmdRegisterName {
		t.Errorf("Kind() = %q, want %q", cmd.Kind(), CmdRegisterName)
	}
	reg, ok := cmd.(RegisterName)
	if !ok {
		t.Fatalf("DecodeCommand() = %T, want RegisterName", cmd)
	}
	if reg.Name != "Alice" {
		t.Errorf("Name = %q, want %q", reg.Name, "Alice")
	}

	raw, err := json.Marshal(RegisterName{Name: "Alice"})
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"name":"Alice"}` {
		t.Errorf("Marshal() = %s, want {\"name\":\"Alice\"}", raw)
	}
}

func TestDecodeCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"not json", `hello`, ErrMalformedFrame},
		{"array frame", `[1,2]`, ErrMalformedFrame},
		{"wrong data type", `{"type":"create-poll","data":{"timeLimit":"soon"}}`, ErrMalformedFrame},
		{"data not object", `{"type":"register-name","data":"Alice"}`, ErrMalformedFrame},
		{"unknown type", `{"type":"delete-everything"}`, ErrUnknownCommand},
		{"missing type", `{"data":{}}`, ErrUnknownCommand},
		{"disconnect is not a command", `{"type":"disconnect"}`, ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := DecodeCommand([]byte(tt.raw))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeCommand() error = %v, want %v", err, tt.wantErr)
			}
			if cmd != nil {
				t.Errorf("DecodeCommand() = %#v, want nil", cmd)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	poll := &Poll{
		ID:        "p1",
		Question:  "Best color?",
		Options:   []PollOption{{ID: "option-0", Text: "Red", Votes: 2}},
		TimeLimit: 30,
		IsActive:  true,
		CreatedAt: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	answer := "option-0"

	tests := []struct {
		name     string
		n        Notification
		wantType string
		wantKeys []string
	}{
		{"poll started", PollStarted{Poll: poll}, EvtPollStarted, []string{"id", "question", "options", "timeLimit", "isActive", "createdAt"}},
		{"student joined", StudentJoined{Student: Student{ID: "s1", Name: "Alice", HasAnswered: true, Answer: &answer}}, EvtStudentJoined, []string{"id", "name", "hasAnswered", "answer"}},
		{"student left", StudentLeft{StudentID: "s1", StudentName: "Alice"}, EvtStudentLeft, []string{"studentId", "studentName"}},
		{"student removed", StudentRemoved{StudentID: "s1"}, EvtStudentRemoved, []string{"studentId"}},
		{"chat", ChatPosted{Message: ChatMessage{ID: "m1", Sender: "Teacher", Message: "hi", IsTeacher: true}}, EvtChatMessage, []string{"id", "sender", "message", "timestamp", "isTeacher"}},
		{"name exists", NameExists{Message: "Name already taken"}, EvtNameExists, []string{"message"}},
		{"rejected", CommandRejected{Command: CmdEndPoll, Reason: ReasonWrongRole}, EvtCommandRejected, []string{"command", "reason"}},
		{"teacher connected", TeacherConnected{}, EvtTeacherConnected, []string{"polls", "students", "currentPoll", "chatMessages"}},
		{"kicked out", KickedOut{}, EvtKickedOut, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(Wrap(tt.n))
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			var frame struct {
				Type string                     `json:"type"`
				Data map[string]json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(raw, &frame); err != nil {
				t.Fatalf("Unmarshal() error = %v; frame %s", err, raw)
			}
			if frame.Type != tt.wantType {
				t.Errorf("type = %q, want %q", frame.Type, tt.wantType)
			}
			if frame.Data == nil {
				t.Fatalf("data should be an object, frame %s", raw)
			}
			for _, key := range tt.wantKeys {
				if _, ok := frame.Data[key]; !ok {
					t.Errorf("data missing %q: %s", key, raw)
				}
			}
		})
	}
}

func TestWrap_StudentsUpdatedIsList(t *testing.T) {
	raw, err := json.Marshal(Wrap(StudentsUpdated{Students: []Student{{ID: "s1", Name: "Alice"}}}))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"data":[{`) {
		t.Errorf("students-updated data should be a list, got %s", raw)
	}
}

func TestPollClone(t *testing.T) {
	var nilPoll *Poll
	if nilPoll.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}

	p := &Poll{ID: "p1", Options: []PollOption{{ID: "option-0", Votes: 1}, {ID: "option-1", Votes: 2}}}
	c := p.Clone()
	c.Options[0].Votes = 99
	if p.Options[0].Votes != 1 {
		t.Error("Clone shares the options slice")
	}
	if p.TotalVotes() != 3 {
		t.Errorf("TotalVotes() = %d, want 3", p.TotalVotes())
	}
	if p.Option("option-1") == nil || p.Option("option-9") != nil {
		t.Error("Option lookup by id is wrong")
	}

	p.Option("option-1").Votes++
	if p.Options[1].Votes != 3 {
		t.Error("Option should return a pointer into the poll")
	}
}
