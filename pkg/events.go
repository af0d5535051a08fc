package pkg

import (
	"encoding/json"
	"log"
)

type EventType int

const (
	TypeEventSelect EventType = iota
	TypeEventDeselect
	TypeEventMove
	TypeEventGameOver
)

func (t EventType) String() string {
	switch t {
	case TypeEventSelect:
		return "TypeEventSelect"
	case TypeEventDeselect:
		return "TypeEventDeselect"
	case TypeEventMove:
		return "TypeEventMove"
	case TypeEventGameOver:
		return "TypeEventGameOver"
	default:
		return "Unknown EventType"
	}
}

// Event is emitted by the controller whenever its state changes
type Event interface {
	Type() EventType
	Encode() json.RawMessage
}

func encode(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Panic(err)
	}
	return data
}

//
type EventSelect struct {
	Square string
	Dests  []string
}

func (e EventSelect) Type() EventType { return TypeEventSelect }
func (e EventSelect) Encode() json.RawMessage { return encode(e) }

//
type EventDeselect struct {
	Square string
}

func (e EventDeselect) Type() EventType { return TypeEventDeselect }
func (e EventDeselect) Encode() json.RawMessage { return encode(e) }

//
type EventMove struct {
	Move string
	Side string
	Fen  string
}

func (e EventMove) Type() EventType { return TypeEventMove }
func (e EventMove) Encode() json.RawMessage { return encode(e) }

//
type EventGameOver struct {
	Status string
	Result string
}

func (e EventGameOver) Type() EventType { return TypeEventGameOver }
func (e EventGameOver) Encode() json.RawMessage { return encode(e) }
