package duck

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"pondeditor/internal/jsonutil"
)

// HTTPRequestError is the user-facing text for a failed request.
const HTTPRequestError = "There was a problem with the request."

// ErrRequest marks a non-200 response.
var ErrRequest = errors.New("duck request failed")

// ResultMsg reports a finished duck operation to the UI.
type ResultMsg struct {
	Op   Op
	Key  string
	Text string // message for the status line
	Err  error
}

// ParseResult interprets a response. 200 carries {"duck_key": ...}.
func ParseResult(op Op, status int, body []byte) ResultMsg {
	if status != http.StatusOK {
		return ResultMsg{
			Op:   op,
			Text: fmt.Sprintf("%s\nStatus: %d", HTTPRequestError, status),
			Err:  fmt.Errorf("%w: status %d", ErrRequest, status),
		}
	}
	meta, err := jsonutil.Object(body, "duck response")
	if err != nil {
		return ResultMsg{Op: op, Text: HTTPRequestError, Err: err}
	}
	key := jsonutil.ToString(meta["duck_key"])
	return ResultMsg{Op: op, Key: key, Text: fmt.Sprintf("Duck %s with key: %s", op.pastTense(), key)}
}

// Publisher is the integration point for persisting duck records.
// Publish runs asynchronously; the returned command yields a ResultMsg.
type Publisher interface {
	Publish(ctx context.Context, req Request) tea.Cmd
}

// StubPublisher keeps ducks in memory and answers the way the duck
// service does. It is used when no service is configured.
type StubPublisher struct {
	mu    sync.Mutex
	ducks map[string]stubDuck
}

type stubDuck struct {
	owner string
	form  CreateForm
}

// Publish implements Publisher.
func (s *StubPublisher) Publish(ctx context.Context, req Request) tea.Cmd {
	return func() tea.Msg {
		if err := req.Validate(); err != nil {
			return ResultMsg{Op: req.Op(), Text: err.Error(), Err: err}
		}
		if err := ctx.Err(); err != nil {
			return ResultMsg{Op: req.Op(), Text: HTTPRequestError, Err: err}
		}
		status, body := s.handle(req)
		return ParseResult(req.Op(), status, body)
	}
}

func (s *StubPublisher) handle(req Request) (int, []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ducks == nil {
		s.ducks = make(map[string]stubDuck)
	}

	var key string
	switch f := req.(type) {
	case CreateForm:
		key = newKey()
		s.ducks[key] = stubDuck{owner: f.UserID, form: f}
	case UpdateForm:
		d, ok := s.ducks[f.DuckKey]
		if !ok {
			return http.StatusNotFound, nil
		}
		if d.owner != f.UserID {
			return http.StatusForbidden, nil
		}
		d.form.JS, d.form.XML = f.JS, f.XML
		s.ducks[f.DuckKey] = d
		key = f.DuckKey
	case DeleteForm:
		d, ok := s.ducks[f.DuckKey]
		if !ok {
			return http.StatusNotFound, nil
		}
		if d.owner != f.UserID {
			return http.StatusForbidden, nil
		}
		delete(s.ducks, f.DuckKey)
		key = f.DuckKey
	default:
		return http.StatusBadRequest, nil
	}
	body, _ := json.Marshal(map[string]string{"duck_key": key})
	return http.StatusOK, body
}

// Len returns the number of stored ducks.
func (s *StubPublisher) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ducks)
}

// newKey generates a random 8-byte key as hex string (16 characters).
func newKey() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
