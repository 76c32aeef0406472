package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"pet-hotel-registry/internal/domain/navigation"
	"pet-hotel-registry/internal/router"
)

// pendingTimers guarda los redirects programados para dispararlos a mano.
type pendingTimers struct {
	mu  sync.Mutex
	fns []func()
}

type noopTimer struct{}

func (noopTimer) Stop() bool { return true }

func (p *pendingTimers) AfterFunc(_ time.Duration, f func()) navigation.Timer {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fns = append(p.fns, f)
	return noopTimer{}
}

func (p *pendingTimers) FireAll() {
	p.mu.Lock()
	fns := p.fns
	p.fns = nil
	p.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *pendingTimers) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	timers := &pendingTimers{}
	h, err := router.NewRouter(ctx, router.Options{AfterFunc: timers.AfterFunc})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts, timers
}

func TestHTTP_Health(t *testing.T) {
	ts, _ := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, body)
	}
}

func TestHTTP_IntakeThenDashboardAndStaff(t *testing.T) {
	ts, _ := newTestServer(t)

	// 1) Alta inválida: no crea nada
	{
		st, body := doReq(t, ts.URL, "POST", "/pets", map[string]any{
			"petName":    "   ",
			"breed":      "Beagle",
			"birthDate":  "15/06/2015",
			"microchip":  "985112003476599",
			"location":   "Cali, Colombia",
			"ownerEmail": "ana@ejemplo.com",
		})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d body=%s", st, string(body))
		}
		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		mustUnmarshal(t, body, &resp)
		if len(resp.Errors) != 1 || resp.Errors["petName"] == "" {
			t.Fatalf("expected only petName error, got %v", resp.Errors)
		}
	}

	// 2) Alta válida
	var created struct {
		ID       string `json:"id"`
		Species  string `json:"species"`
		ImageURL string `json:"image_url"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/pets", map[string]any{
			"petName":    "Nube",
			"species":    "gato",
			"sex":        "hembra",
			"breed":      "Persa",
			"birthDate":  "01/01/2016",
			"microchip":  "985112003476600",
			"location":   "Cali, Colombia",
			"ownerEmail": "ana@ejemplo.com",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
		mustUnmarshal(t, body, &created)
		if created.Species != "Gato" || created.ImageURL != "/images/luna-cat.jpg" {
			t.Fatalf("unexpected record %+v", created)
		}
	}

	// 3) El registro la tiene al frente
	{
		st, body := doReq(t, ts.URL, "GET", "/pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var resp struct {
			Count int `json:"count"`
			Pets  []struct {
				ID string `json:"id"`
			} `json:"pets"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Count != 6 || resp.Pets[0].ID != created.ID {
			t.Fatalf("expected new pet first of 6, got %+v", resp)
		}
	}

	// 4) Dashboard: filtro + búsqueda, stats sobre todo el registro
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/dashboard?filter=Gatos&q=PERSA", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var resp struct {
			Stats struct {
				Total int `json:"total"`
			} `json:"stats"`
			Pets []struct {
				Name string `json:"name"`
			} `json:"pets"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Stats.Total != 6 {
			t.Fatalf("stats should count the whole registry, got %d", resp.Stats.Total)
		}
		if len(resp.Pets) != 2 || resp.Pets[0].Name != "Nube" || resp.Pets[1].Name != "Mia" {
			t.Fatalf("expected Nube then Mia, got %+v", resp.Pets)
		}
	}

	// 5) Staff: por correo del dueño
	{
		st, body := doReq(t, ts.URL, "GET", "/staff/pets?q=ANA@EJEMPLO", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var resp struct {
			Count int    `json:"count"`
			Label string `json:"label"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Count != 1 || resp.Label != "1 resultado" {
			t.Fatalf("unexpected staff result %+v", resp)
		}
	}
}

func TestHTTP_SessionFlow(t *testing.T) {
	ts, timers := newTestServer(t)

	// 1) Nueva sesión en landing
	var sess struct {
		ID   string `json:"id"`
		View struct {
			Screen string `json:"screen"`
		} `json:"view"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/sessions", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d", st)
		}
		mustUnmarshal(t, body, &sess)
		if sess.View.Screen != "landing" {
			t.Fatalf("expected landing, got %s", sess.View.Screen)
		}
	}
	base := "/sessions/" + sess.ID

	// 2) Sin borrador fuera de add-pet; detalle sin selección es 400
	{
		st, _ := doReq(t, ts.URL, "GET", base+"/draft", nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 without draft, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", base+"/navigate", map[string]any{"screen": "owner-pet-detail"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for detail without selection, got %d", st)
		}
	}

	// 3) add-pet: completar el borrador con una vacuna
	navigate(t, ts.URL, base, "add-pet")
	{
		st, body := doReq(t, ts.URL, "PATCH", base+"/draft", map[string]any{
			"petName":    "Bruno",
			"breed":      "Boxer",
			"birthDate":  "10/10/2014",
			"microchip":  "985112003476601",
			"location":   "Bogota, Colombia",
			"ownerEmail": "luis@ejemplo.com",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch draft, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "POST", base+"/draft/vaccines", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add vaccine, got %d", st)
		}
		var added struct {
			ID string `json:"id"`
		}
		mustUnmarshal(t, body, &added)

		// Incompleta: el envío se rechaza con el error agregado
		st, body = doReq(t, ts.URL, "POST", base+"/draft/submit", nil)
		if st != http.StatusUnprocessableEntity || !strings.Contains(string(body), `"vaccines"`) {
			t.Fatalf("expected 422 with vaccines error, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "PATCH", base+"/draft/vaccines/"+added.ID, map[string]any{
			"name":          "Rabia",
			"date":          "01/03/2024",
			"toggleEditing": true,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch vaccine, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "POST", base+"/draft/conditions/toggle", map[string]any{"condition": "Artritis"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 toggle, got %d body=%s", st, string(body))
		}
	}

	// 4) Envío OK: sigue en add-pet hasta que dispare el redirect
	{
		st, body := doReq(t, ts.URL, "POST", base+"/draft/submit", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 submit, got %d body=%s", st, string(body))
		}
		var resp struct {
			View struct {
				Screen string `json:"screen"`
			} `json:"view"`
			RedirectPending bool `json:"redirect_pending"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.View.Screen != "add-pet" || !resp.RedirectPending {
			t.Fatalf("unexpected submit response %+v", resp)
		}

		timers.FireAll()
		if got := currentScreen(t, ts.URL, base); got != "dashboard" {
			t.Fatalf("expected dashboard after redirect, got %s", got)
		}
	}

	// 5) Dashboard de la sesión y selección de la mascota nueva
	{
		st, body := doReq(t, ts.URL, "GET", base+"/dashboard?q=bruno", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var resp struct {
			Pets []struct {
				ID string `json:"id"`
			} `json:"pets"`
		}
		mustUnmarshal(t, body, &resp)
		if len(resp.Pets) != 1 {
			t.Fatalf("expected Bruno only, got %d", len(resp.Pets))
		}

		st, _ = doReq(t, ts.URL, "POST", base+"/select", map[string]any{"pet_id": "1", "target": "owner-pet-detail"})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 selecting a pet not shown, got %d", st)
		}

		st, body = doReq(t, ts.URL, "POST", base+"/select", map[string]any{"pet_id": resp.Pets[0].ID, "target": "owner-pet-detail"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 select, got %d body=%s", st, string(body))
		}
		var tr struct {
			To struct {
				Screen string `json:"screen"`
				Pet    struct {
					Name     string   `json:"name"`
					Diseases []string `json:"diseases"`
				} `json:"pet"`
			} `json:"to"`
			ScrollToTop bool `json:"scroll_to_top"`
		}
		mustUnmarshal(t, body, &tr)
		if tr.To.Screen != "owner-pet-detail" || tr.To.Pet.Name != "Bruno" || !tr.ScrollToTop {
			t.Fatalf("unexpected transition %+v", tr)
		}
		if len(tr.To.Pet.Diseases) != 1 || tr.To.Pet.Diseases[0] != "Artritis" {
			t.Fatalf("unexpected diseases %v", tr.To.Pet.Diseases)
		}
	}

	// 6) Cerrar sesión
	{
		st, _ := doReq(t, ts.URL, "DELETE", base, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", base, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after close, got %d", st)
		}
	}
}

func TestHTTP_RedirectDroppedAfterLeaving(t *testing.T) {
	ts, timers := newTestServer(t)

	_, body := doReq(t, ts.URL, "POST", "/sessions", nil)
	var sess struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, body, &sess)
	base := "/sessions/" + sess.ID

	navigate(t, ts.URL, base, "add-pet")
	doReq(t, ts.URL, "PATCH", base+"/draft", map[string]any{
		"petName":    "Kira",
		"breed":      "Husky",
		"birthDate":  "02/02/2022",
		"microchip":  "985112003476602",
		"location":   "Pasto, Colombia",
		"ownerEmail": "kira@ejemplo.com",
	})
	if st, body := doReq(t, ts.URL, "POST", base+"/draft/submit", nil); st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}

	navigate(t, ts.URL, base, "staff-search")
	timers.FireAll()

	if got := currentScreen(t, ts.URL, base); got != "staff-search" {
		t.Fatalf("redirect should not fire after leaving add-pet, got %s", got)
	}
}

func TestHTTP_MetricsAndSwagger(t *testing.T) {
	ts, _ := newTestServer(t)
	doReq(t, ts.URL, "GET", "/pets", nil)

	st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(string(body), "pet_hotel_registry_size 5") {
		t.Fatalf("missing registry size gauge:\n%s", string(body))
	}

	st, _ = doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 swagger doc, got %d", st)
	}
}

func navigate(t *testing.T, baseURL, sessionPath, screen string) {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", sessionPath+"/navigate", map[string]any{"screen": screen})
	if st != http.StatusOK {
		t.Fatalf("expected 200 navigate to %s, got %d body=%s", screen, st, string(body))
	}
}

func currentScreen(t *testing.T, baseURL, sessionPath string) string {
	t.Helper()
	st, body := doReq(t, baseURL, "GET", sessionPath, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get session, got %d", st)
	}
	var resp struct {
		View struct {
			Screen string `json:"screen"`
		} `json:"view"`
	}
	mustUnmarshal(t, body, &resp)
	return resp.View.Screen
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func TestHTTP_StaffDetailCarriesMedicalAlerts(t *testing.T) {
	ts, _ := newTestServer(t)

	_, body := doReq(t, ts.URL, "POST", "/sessions", nil)
	var sess struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, body, &sess)
	base := "/sessions/" + sess.ID

	navigate(t, ts.URL, base, "staff-search")
	if st, _ := doReq(t, ts.URL, "GET", base+"/staff/pets?q=985112003476521", nil); st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}

	type alerts struct {
		HasMedicalAlerts bool `json:"has_medical_alerts"`
		ExpiredVaccines  []struct {
			Name string `json:"name"`
		} `json:"expired_vaccines"`
	}
	var tr struct {
		To struct {
			Screen string  `json:"screen"`
			Alerts *alerts `json:"alerts"`
		} `json:"to"`
	}

	st, body := doReq(t, ts.URL, "POST", base+"/select", map[string]any{"pet_id": "1", "target": "staff-pet-detail"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 select, got %d body=%s", st, string(body))
	}
	mustUnmarshal(t, body, &tr)
	if tr.To.Screen != "staff-pet-detail" || tr.To.Alerts == nil {
		t.Fatalf("expected staff detail with alerts, got %s", string(body))
	}
	if !tr.To.Alerts.HasMedicalAlerts || len(tr.To.Alerts.ExpiredVaccines) != 1 || tr.To.Alerts.ExpiredVaccines[0].Name != "Parvovirus" {
		t.Fatalf("unexpected alerts %+v", *tr.To.Alerts)
	}

	// La ficha del dueño no lleva alertas.
	tr.To.Alerts = nil
	st, body = doReq(t, ts.URL, "POST", base+"/select", map[string]any{"pet_id": "1", "target": "owner-pet-detail"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 select, got %d body=%s", st, string(body))
	}
	mustUnmarshal(t, body, &tr)
	if tr.To.Screen != "owner-pet-detail" || tr.To.Alerts != nil {
		t.Fatalf("owner detail should not carry alerts: %s", string(body))
	}
}

func TestHTTP_FormAndStaffOptions(t *testing.T) {
	ts, _ := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/pets/intake-options", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var form struct {
		Species []struct {
			Code  string `json:"code"`
			Label string `json:"label"`
		} `json:"species"`
		Conditions []string `json:"conditions"`
	}
	mustUnmarshal(t, body, &form)
	if len(form.Species) != 5 || form.Species[1].Code != "gato" || form.Species[1].Label != "Gato" {
		t.Fatalf("unexpected species options %+v", form.Species)
	}
	if len(form.Conditions) != 12 || form.Conditions[len(form.Conditions)-1] != "Otra" {
		t.Fatalf("unexpected conditions %v", form.Conditions)
	}

	st, body = doReq(t, ts.URL, "GET", "/staff/filters", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var filters struct {
		Species []string `json:"species"`
		Sexes   []string `json:"sexes"`
	}
	mustUnmarshal(t, body, &filters)
	if strings.Join(filters.Species, ",") != "all,perro,gato" || strings.Join(filters.Sexes, ",") != "all,macho,hembra" {
		t.Fatalf("unexpected filters %+v", filters)
	}
}
