package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-hotel-registry/internal/domain/intake"
	"pet-hotel-registry/internal/domain/navigation"
	"pet-hotel-registry/internal/domain/pets"
)

func TestCounters(t *testing.T) {
	m := New()

	m.PetRegistered(pets.Pet{ID: "a", Species: pets.SpeciesCat})
	m.PetRegistered(pets.Pet{ID: "b", Species: pets.SpeciesCat})
	m.IntakeAccepted(pets.SpeciesCat)
	m.IntakeRejected([]intake.Field{intake.FieldPetName, intake.FieldBreed})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.petsRegistered.WithLabelValues(pets.SpeciesCat)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.intakeAccepted.WithLabelValues(pets.SpeciesCat)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.intakeRejected))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.intakeErrors.WithLabelValues("breed")))

	r := navigation.NewRouter(nil)
	r.OnTransition(m.Transition)
	_, err := r.Navigate(navigation.AddPet)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("landing", "add-pet")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.Gauge("registry_size", "Mascotas en el registro.", func() float64 { return 5 })
	m.ObserveHTTP(http.MethodGet, "/pets", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, _ := io.ReadAll(rec.Body)
	out := string(body)
	assert.True(t, strings.Contains(out, "pet_hotel_registry_size 5"), out)
	assert.True(t, strings.Contains(out, `pet_hotel_http_requests_total{method="GET",route="/pets",status="200"} 1`), out)
}
