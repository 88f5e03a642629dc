package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/likeclem30/taxipassbackend/internal/domain"
	"github.com/likeclem30/taxipassbackend/internal/dto"
	"github.com/likeclem30/taxipassbackend/internal/repository/memory"
)

type recordingNotifier struct {
	welcomes    int
	suspensions int
}

func (r *recordingNotifier) Welcome(p *domain.Passenger, bearer string)    { r.welcomes++ }
func (r *recordingNotifier) Suspension(p *domain.Passenger, bearer string) { r.suspensions++ }

func setupPassengerService() (PassengerService, *memory.PassengerRepository, *recordingNotifier) {
	repo := memory.NewPassengerRepository()
	notif := &recordingNotifier{}
	svc := NewPassengerService(repo, notif, zap.NewNop())
	return svc, repo, notif
}

func createRequest() dto.CreatePassengerRequest {
	return dto.CreatePassengerRequest{
		First: "Jane",
		Last:  "Doe",
		Email: "jane@x.com",
		Phone: "07030000001",
	}
}

func TestCreateSelf(t *testing.T) {
	svc, _, notif := setupPassengerService()
	claims := domain.Claims{ID: 1}

	p, err := svc.CreateSelf(claims, createRequest(), "Bearer abc")
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.AuthID)
	assert.Equal(t, 1, p.EmailStatus)
	assert.Equal(t, 0, p.PhoneNumberStatus)
	assert.Nil(t, p.SuspendedAt)
	assert.Nil(t, p.UpdateTimestamp)
	assert.False(t, p.Timestamp.IsZero())
	assert.Equal(t, 1, notif.welcomes)
}

func TestCreateSelf_DuplicateAuthID(t *testing.T) {
	svc, _, notif := setupPassengerService()
	claims := domain.Claims{ID: 1}

	_, err := svc.CreateSelf(claims, createRequest(), "")
	require.NoError(t, err)

	input := createRequest()
	input.Email = "other@x.com"
	input.Phone = "07030000002"
	_, err = svc.CreateSelf(claims, input, "")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 1, notif.welcomes)
}

func TestCreateSelf_EmailCollision(t *testing.T) {
	svc, _, _ := setupPassengerService()

	_, err := svc.CreateSelf(domain.Claims{ID: 1}, createRequest(), "")
	require.NoError(t, err)

	input := createRequest()
	input.Phone = "07030000002"
	_, err = svc.CreateSelf(domain.Claims{ID: 2}, input, "")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateSelf_IgnoresSuppliedStatuses(t *testing.T) {
	svc, _, _ := setupPassengerService()

	zero, one := 0, 1
	input := createRequest()
	input.EmailStatus = &zero
	input.PhoneNumberStatus = &one

	p, err := svc.CreateSelf(domain.Claims{ID: 1}, input, "")
	require.NoError(t, err)
	assert.Equal(t, 1, p.EmailStatus)
	assert.Equal(t, 0, p.PhoneNumberStatus)
}

func TestUpdate_Forbidden(t *testing.T) {
	svc, repo, _ := setupPassengerService()

	created, err := svc.CreateSelf(domain.Claims{ID: 1}, createRequest(), "")
	require.NoError(t, err)

	_, err = svc.Update(created.ID, domain.Claims{ID: 2}, dto.UpdatePassengerRequest{First: "Eve"}, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", stored.FirstName)
}

func TestUpdate_OwnerAndAdminAllowed(t *testing.T) {
	svc, _, _ := setupPassengerService()

	created, err := svc.CreateSelf(domain.Claims{ID: 1}, createRequest(), "")
	require.NoError(t, err)

	p, err := svc.Update(created.ID, domain.Claims{ID: 1}, dto.UpdatePassengerRequest{First: "Janet"}, "")
	require.NoError(t, err)
	assert.Equal(t, "Janet", p.FirstName)

	// A regular admin is enough; super admin is only required for delete.
	p, err = svc.Update(created.ID, domain.Claims{ID: 99, Role: domain.RoleAdmin}, dto.UpdatePassengerRequest{Last: "Smith"}, "")
	require.NoError(t, err)
	assert.Equal(t, "Smith", p.LastName)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _, _ := setupPassengerService()

	_, err := svc.Update(42, domain.Claims{ID: 1}, dto.UpdatePassengerRequest{}, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_TruthyFieldsSkipZeroValues(t *testing.T) {
	svc, _, _ := setupPassengerService()

	created, err := svc.CreateSelf(domain.Claims{ID: 1}, createRequest(), "")
	require.NoError(t, err)

	// Empty strings and a zero rating are treated as "not provided".
	p, err := svc.Update(created.ID, domain.Claims{ID: 1}, dto.UpdatePassengerRequest{
		First:  "",
		Rating: 0,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "Jane", p.FirstName)
	assert.Equal(t, 0.0, p.Rating)
}

func TestUpdate_PresenceFieldsApplyAnyValue(t *testing.T) {
	svc, _, _ := setupPassengerService()

	created, err := svc.CreateSelf(domain.Claims{ID: 1}, createRequest(), "")
	require.NoError(t, err)

	dob := "1975-12-30"
	empty := ""
	zero := 0
	p, err := svc.Update(created.ID, domain.Claims{ID: 1}, dto.UpdatePassengerRequest{
		Dob:          &dob,
		HomeLocation: &empty,
		EmailStatus:  &zero,
	}, "")
	require.NoError(t, err)
	require.NotNil(t, p.DateOfBirth)
	assert.Equal(t, dob, *p.DateOfBirth)
	require.NotNil(t, p.HomeLocation)
	assert.Equal(t, "", *p.HomeLocation)
	assert.Equal(t, 0, p.EmailStatus)
}

func TestUpdate_RatingOnlyRoundTrip(t *testing.T) {
	svc, _, _ := setupPassengerService()

	created, err := svc.CreateSelf(domain.Claims{ID: 1}, createRequest(), "")
	require.NoError(t, err)
	before := *created

	p, err := svc.Update(created.ID, domain.Claims{ID: 1}, dto.UpdatePassengerRequest{Rating: 4.5}, "")
	require.NoError(t, err)

	assert.Equal(t, 4.5, p.Rating)
	require.NotNil(t, p.UpdateTimestamp)

	// Everything else must be untouched.
	after := *p
	after.Rating = before.Rating
	after.UpdateTimestamp = before.UpdateTimestamp
	assert.Equal(t, before, after)
}

func TestUpdate_SuspensionTransition(t *testing.T) {
	svc, _, notif := setupPassengerService()

	created, err := svc.CreateSelf(domain.Claims{ID: 1}, createRequest(), "")
	require.NoError(t, err)

	one := 1
	p, err := svc.Update(created.ID, domain.Claims{ID: 1}, dto.UpdatePassengerRequest{Suspend: &one}, "")
	require.NoError(t, err)
	require.NotNil(t, p.SuspendedAt)
	assert.Equal(t, 1, notif.suspensions)

	// Suspending an already suspended account does not notify again.
	p, err = svc.Update(created.ID, domain.Claims{ID: 1}, dto.UpdatePassengerRequest{Suspend: &one}, "")
	require.NoError(t, err)
	require.NotNil(t, p.SuspendedAt)
	assert.Equal(t, 1, notif.suspensions)

	zero := 0
	p, err = svc.Update(created.ID, domain.Claims{ID: 1}, dto.UpdatePassengerRequest{Suspend: &zero}, "")
	require.NoError(t, err)
	assert.Nil(t, p.SuspendedAt)

	// Back to suspended is a fresh transition.
	_, err = svc.Update(created.ID, domain.Claims{ID: 1}, dto.UpdatePassengerRequest{Suspend: &one}, "")
	require.NoError(t, err)
	assert.Equal(t, 2, notif.suspensions)
}

func TestDelete(t *testing.T) {
	svc, repo, _ := setupPassengerService()

	created, err := svc.CreateSelf(domain.Claims{ID: 1}, createRequest(), "")
	require.NoError(t, err)

	err = svc.Delete(created.ID, domain.Claims{ID: 9, Role: domain.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = svc.Delete(created.ID, domain.Claims{ID: 9, Role: domain.RoleSuperAdmin})
	require.NoError(t, err)

	_, err = repo.FindByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting a record that is already gone is a no-op.
	err = svc.Delete(created.ID, domain.Claims{ID: 9, Role: domain.RoleSuperAdmin})
	assert.NoError(t, err)
}

func TestCheckDateOfBirth(t *testing.T) {
	svc, _, _ := setupPassengerService()

	dob := "1975-12-30"
	input := createRequest()
	input.Dob = &dob
	_, err := svc.CreateSelf(domain.Claims{ID: 1}, input, "")
	require.NoError(t, err)

	_, err = svc.CheckDateOfBirth(42, dob)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.CheckDateOfBirth(1, "1975-12-31")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	p, err := svc.CheckDateOfBirth(1, dob)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.AuthID)
}

func TestCheckDateOfBirth_NoStoredValue(t *testing.T) {
	svc, _, _ := setupPassengerService()

	_, err := svc.CreateSelf(domain.Claims{ID: 1}, createRequest(), "")
	require.NoError(t, err)

	_, err = svc.CheckDateOfBirth(1, "1975-12-30")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
