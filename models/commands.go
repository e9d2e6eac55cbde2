// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Command event names (client -> server)
const (
	CmdSelectRole    = "select-role"
	CmdRegisterName  = "register-name"
	CmdCreatePoll    = "create-poll"
	CmdSubmitAnswer  = "submit-answer"
	CmdEndPoll       = "end-poll"
	CmdRemoveStudent = "remove-student"
	CmdSendChat      = "send-chat"
)

// Names the original browser client emits for the same commands.
const (
	cmdAliasStudentName = "student-name"
	cmdAliasChatMessage = "chat-message"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMalformedFrame = errors.New("malformed frame")
)

// Command is the closed set of messages a connection may issue.
// Disconnect is not a Command; the transport reports it directly.
type Command interface {
	Kind() string
	isCommand()
}

type SelectRole struct {
	Role Role `json:"role"`
}

type RegisterName struct {
	Name string `json:"name"`
}

type CreatePoll struct {
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	TimeLimit int      `json:"timeLimit"`
}

type SubmitAnswer struct {
	OptionID string `json:"optionId"`
}

type EndPoll struct{}

type RemoveStudent struct {
	StudentID string `json:"studentId"`
}

type SendChat struct {
	Message string `json:"message"`
}

func (SelectRole) Kind() string    { return CmdSelectRole }
func (RegisterName) Kind() string  { return CmdRegisterName }
func (CreatePoll) Kind() string    { return CmdCreatePoll }
func (SubmitAnswer) Kind() string  { return CmdSubmitAnswer }
func (EndPoll) Kind() string       { return CmdEndPoll }
func (RemoveStudent) Kind() string { return CmdRemoveStudent }
func (SendChat) Kind() string      { return CmdSendChat }

func (SelectRole) isCommand()    {}
func (RegisterName) isCommand()  {}
func (CreatePoll) isCommand()    {}
func (SubmitAnswer) isCommand()  {}
func (EndPoll) isCommand()       {}
func (RemoveStudent) isCommand() {}
func (SendChat) isCommand()      {}

type inboundFrame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// DecodeCommand parses a {"type": ..., "data": ...} frame into its typed command.
func DecodeCommand(raw []byte) (Command, error) {
	var frame inboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}

	var cmd Command
	switch frame.Type {
	case CmdSelectRole:
		var c SelectRole
		if err := decodeData(frame.Data, &c); err != nil {
			return nil, err
		}
		cmd = c
	case CmdRegisterName, cmdAliasStudentName:
		var c RegisterName
		if err := decodeData(frame.Data, &c); err != nil {
			return nil, err
		}
		cmd = c
	case CmdCreatePoll:
		var c CreatePoll
		if err := decodeData(frame.Data, &c); err != nil {
			return nil, err
		}
		cmd = c
	case CmdSubmitAnswer:
		var c SubmitAnswer
		if err := decodeData(frame.Data, &c); err != nil {
			return nil, err
		}
		cmd = c
	case CmdEndPoll:
		cmd = EndPoll{}
	case CmdRemoveStudent:
		var c RemoveStudent
		if err := decodeData(frame.Data, &c); err != nil {
			return nil, err
		}
		cmd = c
	case CmdSendChat, cmdAliasChatMessage:
		var c SendChat
		if err := decodeData(frame.Data, &c); err != nil {
			return nil, err
		}
		cmd = c
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, frame.Type)
	}

	return cmd, nil
}

func decodeData(data json.RawMessage, v interface{}) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	return nil
}
