package action_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/tailored-agentic-units/actions/action"
)

const testType = "TEST_ACTION"

func TestNew_TypeAndString(t *testing.T) {
	types := []string{"INC", "todo.add", "a", "GET_USER"}

	for _, typ := range types {
		t.Run(typ, func(t *testing.T) {
			c := action.New(typ)

			if got := c.Create().Type; got != typ {
				t.Errorf("Create().Type = %q, want %q", got, typ)
			}
			if got := c.String(); got != typ {
				t.Errorf("String() = %q, want %q", got, typ)
			}
			if got := fmt.Sprint(c); got != typ {
				t.Errorf("fmt.Sprint() = %q, want %q", got, typ)
			}
		})
	}
}

func TestNew_EmptyTypePanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, action.ErrEmptyType) {
			t.Errorf("recover() = %v, want %v", r, action.ErrEmptyType)
		}
	}()

	action.New("")
}

func TestCreate_NoPayload(t *testing.T) {
	a := action.New(testType).Create()

	if a.HasPayload() {
		t.Error("HasPayload() = true, want false")
	}
	if a.HasMeta() {
		t.Error("HasMeta() = true, want false")
	}
	if a.Error {
		t.Error("Error = true, want false")
	}
}

func TestCreate_Payload(t *testing.T) {
	tests := []struct {
		name    string
		payload action.PayloadFunc
		args    []any
		want    any
	}{
		{
			name:    "forwards input",
			payload: action.Identity,
			args:    []any{1234},
			want:    1234,
		},
		{
			name: "computes from arguments",
			payload: func(args ...any) any {
				return args[0].(int) + args[1].(int)
			},
			args: []any{40, 2},
			want: 42,
		},
		{
			name:    "nil payload is still present",
			payload: func(args ...any) any { return nil },
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := action.New(testType, action.WithPayload(tt.payload)).Create(tt.args...)

			if !a.HasPayload() {
				t.Fatal("HasPayload() = false, want true")
			}
			if a.Payload != tt.want {
				t.Errorf("Payload = %v, want %v", a.Payload, tt.want)
			}
		})
	}
}

func TestCreate_MetaIndependentOfPayload(t *testing.T) {
	var payloadArgs, metaArgs []any

	c := action.New(testType,
		action.WithPayload(func(args ...any) any {
			payloadArgs = args
			return "payload"
		}),
		action.WithMeta(func(args ...any) any {
			metaArgs = args
			return "meta"
		}),
	)

	a := c.Create(7, "x")

	if a.Payload != "payload" || a.Meta != "meta" {
		t.Errorf("Create() = %v/%v, want payload/meta", a.Payload, a.Meta)
	}
	if len(payloadArgs) != 2 || len(metaArgs) != 2 {
		t.Fatalf("args = %v / %v, want both length 2", payloadArgs, metaArgs)
	}
	if metaArgs[0] != 7 || metaArgs[1] != "x" {
		t.Errorf("meta args = %v, want raw call arguments", metaArgs)
	}
}

func TestCreate_OnlyMeta(t *testing.T) {
	a := action.New(testType, action.WithMeta(func(args ...any) any {
		return map[string]int{"asdf": 1234}
	})).Create()

	if a.HasPayload() {
		t.Error("HasPayload() = true, want false")
	}
	meta, ok := action.MetaOf[map[string]int](a)
	if !ok || meta["asdf"] != 1234 {
		t.Errorf("MetaOf() = %v, %v, want map with asdf=1234", meta, ok)
	}
}

func TestPayloadOf(t *testing.T) {
	a := action.New(testType, action.WithPayload(action.Identity)).Create(42)

	if v, ok := action.PayloadOf[int](a); !ok || v != 42 {
		t.Errorf("PayloadOf[int]() = %v, %v, want 42, true", v, ok)
	}
	if _, ok := action.PayloadOf[string](a); ok {
		t.Error("PayloadOf[string]() ok = true, want false")
	}
	if _, ok := action.PayloadOf[int](action.Of(testType)); ok {
		t.Error("PayloadOf() on bare action ok = true, want false")
	}
}

func TestAction_Literal(t *testing.T) {
	a := action.Action{Type: testType, Payload: 42, Meta: "m"}

	if !a.HasPayload() || !a.HasMeta() {
		t.Errorf("HasPayload() = %v, HasMeta() = %v, want true, true", a.HasPayload(), a.HasMeta())
	}
	if v, ok := action.PayloadOf[int](a); !ok || v != 42 {
		t.Errorf("PayloadOf[int]() = %v, %v, want 42, true", v, ok)
	}
	if v, ok := action.MetaOf[string](a); !ok || v != "m" {
		t.Errorf("MetaOf[string]() = %v, %v, want m, true", v, ok)
	}

	bare := action.Action{Type: testType}
	if bare.HasPayload() || bare.HasMeta() {
		t.Error("bare literal reports payload or meta")
	}
}

func TestCreator_Match(t *testing.T) {
	inc := action.New("INC")
	dec := action.New("DEC")

	if !inc.Match(inc.Create()) {
		t.Error("inc.Match(inc) = false, want true")
	}
	if inc.Match(dec.Create()) {
		t.Error("inc.Match(dec) = true, want false")
	}
}

func TestLifecycle_Derive(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "pending default", got: action.OnPending("GET"), want: "GET_PENDING"},
		{name: "fulfilled default", got: action.OnFulfilled("GET"), want: "GET_FULFILLED"},
		{name: "rejected default", got: action.OnRejected("GET"), want: "GET_REJECTED"},
		{name: "pending custom", got: action.OnPending("GET", "#"), want: "GET#PENDING"},
		{name: "fulfilled custom", got: action.OnFulfilled("GET", "#"), want: "GET#FULFILLED"},
		{name: "rejected custom", got: action.OnRejected("GET", "/"), want: "GET/REJECTED"},
		{name: "derive empty delimiter", got: action.Derive("GET", action.PhasePending, ""), want: "GET_PENDING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func resolve(v any) action.AsyncFunc {
	return func(args ...any) action.Task {
		return func(ctx context.Context) (any, error) {
			if len(args) > 0 {
				return args[0], nil
			}
			return v, nil
		}
	}
}

func TestNewAsync_BaseAction(t *testing.T) {
	ac := action.NewAsync(testType, resolve(nil))

	a := ac.Create("x")
	if a.Type != testType {
		t.Errorf("Create().Type = %q, want %q", a.Type, testType)
	}

	task, ok := action.TaskOf(a)
	if !ok || task == nil {
		t.Fatal("TaskOf() = false, want Task payload")
	}

	got, err := task(context.Background())
	if err != nil || got != "x" {
		t.Errorf("task() = %v, %v, want x, nil", got, err)
	}
}

func TestNewAsync_DoesNotRunTask(t *testing.T) {
	ran := false
	ac := action.NewAsync(testType, func(args ...any) action.Task {
		return func(ctx context.Context) (any, error) {
			ran = true
			return nil, nil
		}
	})

	ac.Create()
	if ran {
		t.Error("Create() ran the task, want it untouched")
	}
}

func TestNewAsync_LifecycleTypes(t *testing.T) {
	tests := []struct {
		name      string
		opts      []action.Option
		delimiter string
	}{
		{name: "default delimiter", delimiter: "_"},
		{name: "custom delimiter", opts: []action.Option{action.WithDelimiter("#")}, delimiter: "#"},
		{name: "empty delimiter falls back", opts: []action.Option{action.WithDelimiter("")}, delimiter: "_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac := action.NewAsync(testType, resolve(nil), tt.opts...)

			if got := ac.Pending.String(); got != action.OnPending(testType, tt.delimiter) {
				t.Errorf("Pending = %q, want %q", got, action.OnPending(testType, tt.delimiter))
			}
			if got := ac.Fulfilled.String(); got != action.OnFulfilled(testType, tt.delimiter) {
				t.Errorf("Fulfilled = %q, want %q", got, action.OnFulfilled(testType, tt.delimiter))
			}
			if got := ac.Rejected.String(); got != action.OnRejected(testType, tt.delimiter) {
				t.Errorf("Rejected = %q, want %q", got, action.OnRejected(testType, tt.delimiter))
			}
			if ac.Delimiter() != tt.delimiter {
				t.Errorf("Delimiter() = %q, want %q", ac.Delimiter(), tt.delimiter)
			}
		})
	}
}

func TestNewAsync_Children(t *testing.T) {
	ac := action.NewAsync(testType, resolve(nil))

	pending := ac.Pending.Create()
	if pending.HasPayload() {
		t.Error("pending HasPayload() = true, want false")
	}

	fulfilled := ac.Fulfilled.Create("payload")
	if fulfilled.Type != action.OnFulfilled(testType) || fulfilled.Payload != "payload" {
		t.Errorf("fulfilled = %v, want payload forwarded", fulfilled)
	}
	if fulfilled.Error {
		t.Error("fulfilled Error = true, want false")
	}

	rejected := ac.Rejected.Create("error")
	if rejected.Type != action.OnRejected(testType) || rejected.Payload != "error" {
		t.Errorf("rejected = %v, want payload forwarded", rejected)
	}
	if !rejected.Error {
		t.Error("rejected Error = false, want true")
	}

	empty := ac.Rejected.Create()
	if !empty.HasPayload() || empty.Payload != nil {
		t.Errorf("rejected without args = %v, want present nil payload", empty)
	}
}

func TestNewAsync_Settle(t *testing.T) {
	ac := action.NewAsync(testType, resolve(nil))
	boom := errors.New("boom")

	if a := ac.Settle(42, nil); a.Type != ac.Fulfilled.Type() || a.Payload != 42 {
		t.Errorf("Settle(42, nil) = %v, want fulfilled 42", a)
	}
	if a := ac.Settle(nil, boom); a.Type != ac.Rejected.Type() || a.Payload != boom {
		t.Errorf("Settle(nil, boom) = %v, want rejected boom", a)
	}
}

func TestNewAsync_Phase(t *testing.T) {
	ac := action.NewAsync(testType, resolve(nil))

	for i, p := range action.Phases {
		if ac.Phase(p) != ac.Phases()[i] {
			t.Errorf("Phase(%s) does not match Phases()[%d]", p, i)
		}
	}
	if ac.Phase("DONE") != nil {
		t.Error("Phase(DONE) != nil")
	}
}

func TestAsyncCreator_StringPanics(t *testing.T) {
	ac := action.NewAsync(testType, resolve(nil))
	want := "Async action TEST_ACTION must be handled with pending, fulfilled or rejected"

	for i := range 2 {
		func() {
			defer func() {
				err, ok := recover().(error)
				if !ok {
					t.Fatalf("call %d: String() did not panic with an error", i)
				}
				if !errors.Is(err, action.ErrBareAsync) {
					t.Errorf("call %d: error = %v, want ErrBareAsync", i, err)
				}
				if err.Error() != want {
					t.Errorf("call %d: message = %q, want %q", i, err.Error(), want)
				}
			}()
			_ = ac.String()
		}()
		ac.Create()
	}
}

func TestTypeOf(t *testing.T) {
	ac := action.NewAsync(testType, resolve(nil))

	tests := []struct {
		name    string
		value   any
		want    string
		wantErr error
	}{
		{name: "creator", value: action.New("INC"), want: "INC"},
		{name: "lifecycle child", value: ac.Pending, want: "TEST_ACTION_PENDING"},
		{name: "string", value: "RAW", want: "RAW"},
		{name: "async base", value: ac, wantErr: action.ErrBareAsync},
		{name: "untyped", value: 42, wantErr: action.ErrNotTyped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := action.TypeOf(tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("TypeOf() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("TypeOf() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TypeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsError(t *testing.T) {
	boom := errors.New("boom")

	if action.AsError(nil) != nil {
		t.Error("AsError(nil) != nil")
	}
	if action.AsError(boom) != boom {
		t.Error("AsError(err) did not pass the error through")
	}

	var rej *action.RejectionError
	if err := action.AsError("oops"); !errors.As(err, &rej) || rej.Value != "oops" {
		t.Errorf("AsError(\"oops\") = %v, want RejectionError holding oops", err)
	}
}
