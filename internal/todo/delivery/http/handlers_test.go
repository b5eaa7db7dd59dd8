package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"todo-service/internal/model"
	"todo-service/internal/todo"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	createOut   todo.CreateTodoOutput
	createErr   error
	listOut     todo.ListTodosOutput
	listErr     error
	completeOut todo.CompleteTodoOutput
	completeErr error
	completedID string
}

func (m *mockUseCase) Create(ctx context.Context, input todo.CreateTodoInput) (todo.CreateTodoOutput, error) {
	return m.createOut, m.createErr
}

func (m *mockUseCase) List(ctx context.Context) (todo.ListTodosOutput, error) {
	return m.listOut, m.listErr
}

func (m *mockUseCase) Complete(ctx context.Context, id string) (todo.CompleteTodoOutput, error) {
	m.completedID = id
	return m.completeOut, m.completeErr
}

func newTestRouter(uc todo.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := New(&mockLogger{}, uc)

	todos := engine.Group("/api/v1/todos")
	{
		todos.POST("", h.Create)
		todos.GET("", h.List)
		todos.POST("/:id/complete", h.Complete)
	}
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func TestCreateTodo(t *testing.T) {
	item := model.TodoItem{ID: "u1", Title: "Buy milk", Completed: false}
	uc := &mockUseCase{createOut: todo.CreateTodoOutput{Todo: item}}
	engine := newTestRouter(uc)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/todos", `{"title":"Buy milk"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	var resp todoResp
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if resp.ID != "u1" || resp.Title != "Buy milk" || resp.Completed {
		t.Errorf("unexpected payload %+v", resp)
	}
}

func TestCreateTodoMissingTitle(t *testing.T) {
	engine := newTestRouter(&mockUseCase{})

	w := doRequest(t, engine, http.MethodPost, "/api/v1/todos", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
}

func TestListTodos(t *testing.T) {
	uc := &mockUseCase{listOut: todo.ListTodosOutput{Todos: []model.TodoItem{
		{ID: "a", Title: "A", Completed: false},
		{ID: "b", Title: "B", Completed: true},
	}}}
	engine := newTestRouter(uc)

	w := doRequest(t, engine, http.MethodGet, "/api/v1/todos", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	var resp listResp
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if resp.Total != 2 || len(resp.Todos) != 2 {
		t.Errorf("unexpected payload %+v", resp)
	}
}

func TestListTodosEmpty(t *testing.T) {
	engine := newTestRouter(&mockUseCase{})

	w := doRequest(t, engine, http.MethodGet, "/api/v1/todos", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"todos":[]`) {
		t.Errorf("empty list must marshal as [], got %s", w.Body.String())
	}
}

func TestCompleteTodo(t *testing.T) {
	item := model.TodoItem{ID: "u1", Title: "Buy milk", Completed: true}
	uc := &mockUseCase{completeOut: todo.CompleteTodoOutput{Todo: item}}
	engine := newTestRouter(uc)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/todos/u1/complete", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if uc.completedID != "u1" {
		t.Errorf("use case received id %q, want %q", uc.completedID, "u1")
	}

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	var resp todoResp
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if !resp.Completed {
		t.Errorf("unexpected payload %+v", resp)
	}
}

func TestCompleteTodoNotFound(t *testing.T) {
	uc := &mockUseCase{completeErr: todo.ErrTodoNotFound}
	engine := newTestRouter(uc)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/todos/missing/complete", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body: %s", w.Code, w.Body.String())
	}
}

func TestCompleteTodoAlreadyCompleted(t *testing.T) {
	uc := &mockUseCase{completeErr: model.ErrAlreadyCompleted}
	engine := newTestRouter(uc)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/todos/u1/complete", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409; body: %s", w.Code, w.Body.String())
	}
}

func TestStorageErrorMapsToInternal(t *testing.T) {
	uc := &mockUseCase{listErr: context.DeadlineExceeded}
	engine := newTestRouter(uc)

	w := doRequest(t, engine, http.MethodGet, "/api/v1/todos", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500; body: %s", w.Code, w.Body.String())
	}
}
