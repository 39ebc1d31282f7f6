package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fiberops/circuitdesk/internal/core/domain"
	"github.com/fiberops/circuitdesk/internal/core/ports"
)

// contractStub serves the provisioning service contract the way the real
// backend does, enough to exercise every client path.
type contractStub struct {
	records    map[string]domain.Record
	nextID     int
	lastPath   string
	lastMethod string
}

func newContractStub() *contractStub {
	return &contractStub{records: make(map[string]domain.Record), nextID: 1}
}

func (s *contractStub) router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s.lastPath = c.Request().URL.RequestURI()
			s.lastMethod = c.Request().Method
			return next(c)
		}
	})

	e.POST("/api/login", func(c echo.Context) error {
		var req struct {
			Login string `json:"login"`
			Senha string `json:"senha"`
		}
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.Senha != "s3cret" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "usuário ou senha inválidos"})
		}
		return c.JSON(http.StatusOK, domain.Session{Login: req.Login, Nome: "Maria Souza", Permissao: "admin"})
	})

	e.POST("/api/cadastro_usuario", func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"message": "Cadastro realizado com sucesso!"})
	})

	e.GET("/buscar/sip", func(c echo.Context) error { return s.search(c, domain.DimSIP) })
	e.GET("/buscar/ddr", func(c echo.Context) error { return s.search(c, domain.DimDDR) })
	e.GET("/buscar/lp", func(c echo.Context) error { return s.search(c, domain.DimLP) })

	e.POST("/cadastro", func(c echo.Context) error {
		var rec domain.Record
		if err := c.Bind(&rec); err != nil {
			return err
		}
		rec.ID = string(rune('0' + s.nextID))
		s.nextID++
		s.records[rec.ID] = rec
		return c.JSON(http.StatusCreated, rec)
	})

	e.PUT("/atualizar/cadastro/:id", func(c echo.Context) error {
		id := c.Param("id")
		if _, ok := s.records[id]; !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "registro não encontrado"})
		}
		var rec domain.Record
		if err := c.Bind(&rec); err != nil {
			return err
		}
		rec.ID = id
		s.records[id] = rec
		return c.JSON(http.StatusOK, rec)
	})

	e.DELETE("/cadastro/:id", func(c echo.Context) error {
		id := c.Param("id")
		if _, ok := s.records[id]; !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "registro não encontrado"})
		}
		delete(s.records, id)
		return c.NoContent(http.StatusNoContent)
	})

	return e
}

func (s *contractStub) search(c echo.Context, dim domain.Dimension) error {
	value := c.QueryParam(string(dim))
	out := []domain.Record{}
	for _, r := range s.records {
		switch dim {
		case domain.DimSIP:
			if r.SIP == value {
				out = append(out, r)
			}
		case domain.DimDDR:
			if r.DDR == value {
				out = append(out, r)
			}
		default:
			if r.LP == value {
				out = append(out, r)
			}
		}
	}
	return c.JSON(http.StatusOK, out)
}

func sample() domain.Record {
	return domain.Record{
		Cliente: "Empresa ABC Ltda",
		SIP:     "1001",
		DDR:     "4733001001",
		LP:      "LP001",
		AtpOsx:  "ATP123",
		Cabo:    "Cabo-01",
		Fibras:  "12F",
		Enlace:  "1500",
		Porta:   "P1",
	}
}

func newFixture(t *testing.T) (*contractStub, *Client) {
	t.Helper()
	stub := newContractStub()
	srv := httptest.NewServer(stub.router())
	t.Cleanup(srv.Close)
	return stub, New(srv.URL+"/", 0, zerolog.Nop())
}

func TestClient_Search_HitsDimensionEndpoint(t *testing.T) {
	stub, client := newFixture(t)
	created, err := client.Create(context.Background(), sample())
	if err != nil {
		t.Fatal(err)
	}

	got, err := client.Search(context.Background(), domain.Query{Dimension: domain.DimDDR, Value: "4733001001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.lastPath != "/buscar/ddr?ddr=4733001001" {
		t.Errorf("wrong request line: %s", stub.lastPath)
	}
	if len(got) != 1 || got[0].ID != created.ID {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestClient_Search_EscapesQueryValue(t *testing.T) {
	stub, client := newFixture(t)

	if _, err := client.Search(context.Background(), domain.Query{Dimension: domain.DimSIP, Value: "10 01&x=y"}); err != nil {
		t.Fatal(err)
	}
	if stub.lastPath != "/buscar/sip?sip=10+01%26x%3Dy" {
		t.Errorf("value must be query-escaped, got %s", stub.lastPath)
	}
}

func TestClient_Search_EmptyResultIsNotAnError(t *testing.T) {
	_, client := newFixture(t)

	got, err := client.Search(context.Background(), domain.Query{Dimension: domain.DimLP, Value: "LP999"})
	if err != nil {
		t.Fatalf("empty result must succeed, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected an empty non-nil slice, got %#v", got)
	}
}

func TestClient_Create_ReturnsServerAssignedID(t *testing.T) {
	stub, client := newFixture(t)

	draft := sample()
	draft.ID = "client-side"
	created, err := client.Create(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" || created.ID == "client-side" {
		t.Errorf("id must come from the server, got %q", created.ID)
	}
	if stub.lastMethod != http.MethodPost || stub.lastPath != "/cadastro" {
		t.Errorf("wrong request: %s %s", stub.lastMethod, stub.lastPath)
	}
}

func TestClient_Update_FullReplacement(t *testing.T) {
	stub, client := newFixture(t)
	created, err := client.Create(context.Background(), sample())
	if err != nil {
		t.Fatal(err)
	}

	edited := *created
	edited.Porta = "P9"
	updated, err := client.Update(context.Background(), created.ID, edited)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Porta != "P9" || updated.ID != created.ID {
		t.Errorf("unexpected record: %+v", updated)
	}
	if stub.lastPath != "/atualizar/cadastro/"+created.ID {
		t.Errorf("wrong path: %s", stub.lastPath)
	}
}

func TestClient_Update_NotFoundSurfacesServerReason(t *testing.T) {
	_, client := newFixture(t)

	_, err := client.Update(context.Background(), "999", sample())
	var oe *domain.OpError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OpError, got %v", err)
	}
	if oe.Op != "update" || oe.Reason != "registro não encontrado" {
		t.Errorf("server reason must surface verbatim, got %+v", oe)
	}
}

func TestClient_Delete(t *testing.T) {
	stub, client := newFixture(t)
	created, err := client.Create(context.Background(), sample())
	if err != nil {
		t.Fatal(err)
	}

	if err := client.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.lastMethod != http.MethodDelete || stub.lastPath != "/cadastro/"+created.ID {
		t.Errorf("wrong request: %s %s", stub.lastMethod, stub.lastPath)
	}
	if len(stub.records) != 0 {
		t.Error("record must be gone remotely")
	}
}

func TestClient_Login(t *testing.T) {
	stub, client := newFixture(t)

	sess, err := client.Login(context.Background(), "maria", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Login != "maria" || sess.Permissao != "admin" {
		t.Errorf("unexpected session: %+v", sess)
	}
	if stub.lastPath != "/api/login" {
		t.Errorf("wrong path: %s", stub.lastPath)
	}
}

func TestClient_Login_BadCredentials(t *testing.T) {
	_, client := newFixture(t)

	_, err := client.Login(context.Background(), "maria", "wrong")
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Reason != "usuário ou senha inválidos" {
		t.Errorf("expected the server's error message, got %v", err)
	}
}

func TestClient_RegisterUser(t *testing.T) {
	stub, client := newFixture(t)

	msg, err := client.RegisterUser(context.Background(), ports.RegisterUserInput{
		Nome: "João Lima", Login: "joao", Senha: "s3cret", Permissao: "user",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Cadastro realizado com sucesso!" {
		t.Errorf("unexpected message: %q", msg)
	}
	if stub.lastPath != "/api/cadastro_usuario" {
		t.Errorf("wrong path: %s", stub.lastPath)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	client := New("http://127.0.0.1:1", 0, zerolog.Nop()) // nothing listens here

	_, err := client.Search(context.Background(), domain.Query{Dimension: domain.DimSIP, Value: "1001"})
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Op != "search" {
		t.Fatalf("expected search OpError, got %v", err)
	}
	if oe.Unwrap() == nil {
		t.Error("transport failures must keep the underlying error in the chain")
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()
	client := New(srv.URL, 0, zerolog.Nop())

	_, err := client.Search(context.Background(), domain.Query{Dimension: domain.DimSIP, Value: "1001"})
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Reason != "malformed response" {
		t.Errorf("expected malformed response error, got %v", err)
	}
}

func TestClient_ErrorWithoutEnvelopeFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "plain text failure", http.StatusBadGateway)
	}))
	defer srv.Close()
	client := New(srv.URL, 0, zerolog.Nop())

	err := client.Delete(context.Background(), "1")
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Reason != "Bad Gateway" {
		t.Errorf("expected status-text fallback, got %v", err)
	}
}
