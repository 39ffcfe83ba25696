package testdb

import (
	"context"
	"sync"

	"github.com/motionhq/motion/api/internal/database"
)

// Call is one statement received by the fake
type Call struct {
	Query string
	Vars  map[string]interface{}
}

// Response is the canned answer to one statement
type Response struct {
	Result []interface{}
	Err    error
}

// Fake is an in-memory database.Database answering from a response queue.
// When the queue is empty every statement returns an empty OK result.
type Fake struct {
	mu        sync.Mutex
	calls     []Call
	responses []Response
	PingErr   error
	connected bool
}

var _ database.Database = (*Fake)(nil)

// NewFake creates an empty fake
func NewFake() *Fake {
	return &Fake{}
}

// Rows wraps records in the {status, result} envelope SurrealDB returns
func Rows(records ...map[string]interface{}) Response {
	result := make([]interface{}, 0, len(records))
	for _, r := range records {
		result = append(result, r)
	}
	return Response{Result: []interface{}{
		map[string]interface{}{"status": "OK", "result": result},
	}}
}

// Fail makes the next statement return err
func Fail(err error) Response {
	return Response{Err: err}
}

// Respond queues responses in order
func (f *Fake) Respond(responses ...Response) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, responses...)
}

// Calls returns the statements received so far
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// LastCall returns the most recent statement, or an empty Call
func (f *Fake) LastCall() Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return Call{}
	}
	return f.calls[len(f.calls)-1]
}

// Connect marks the fake as connected
func (f *Fake) Connect(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = true
	return nil
}

// Close marks the fake as disconnected
func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = false
	return nil
}

// Ping returns PingErr
func (f *Fake) Ping(ctx context.Context) error {
	return f.PingErr
}

// Query records the statement and pops the next response
func (f *Fake) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Query: query, Vars: vars})
	if len(f.responses) == 0 {
		return Rows().Result, nil
	}

	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp.Result, resp.Err
}

// QueryOne returns the first record of the next response
func (f *Fake) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	results, err := f.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	return database.FirstRecord(results)
}

// Execute records the statement and discards its result
func (f *Fake) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	_, err := f.Query(ctx, query, vars)
	return err
}
