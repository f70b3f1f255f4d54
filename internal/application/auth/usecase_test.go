package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/pkg/identifier"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id identifier.UID) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetByEmailAndCompany(ctx context.Context, email string, companyID identifier.UID) (*entity.User, error) {
	u := f.byEmail[email]
	if u == nil || u.CompanyID != companyID {
		return nil, nil
	}
	return u, nil
}

type fakeCompanyRepo struct {
	companies map[identifier.UID]*entity.Company
}

func (f *fakeCompanyRepo) Create(ctx context.Context, company *entity.Company) error { return nil }

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id identifier.UID) (*entity.Company, error) {
	return f.companies[id], nil
}

func (f *fakeCompanyRepo) GetByTaxID(ctx context.Context, taxID string) (*entity.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	return nil, nil
}

// recordedAction captura una llamada a Record para inspección.
type recordedAction struct {
	CompanyID  identifier.UID
	UserID     identifier.UID
	Action     string
	EntityType string
	Details    string
}

type fakeAuditRecorder struct {
	actions []recordedAction
}

func (f *fakeAuditRecorder) Record(ctx context.Context, companyID, userID identifier.UID, action, entityType string, entityID identifier.UID, details string) {
	f.actions = append(f.actions, recordedAction{
		CompanyID:  companyID,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		Details:    details,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const testPassword = "contraseña-segura-123"

func newAuthFixture(t *testing.T) (*AuthUseCase, *fakeAuditRecorder, *entity.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	companyID := identifier.New()
	user := &entity.User{
		ID:           identifier.New(),
		CompanyID:    companyID,
		Email:        "contadora@acme.co",
		PasswordHash: string(hash),
		Name:         "Contadora",
		Role:         entity.RoleContador,
		Status:       "active",
	}
	userRepo := &fakeUserRepo{byEmail: map[string]*entity.User{user.Email: user}}
	companyRepo := &fakeCompanyRepo{companies: map[identifier.UID]*entity.Company{
		companyID: {ID: companyID, Name: "ACME S.A.S.", TaxID: "900123456-7"},
	}}
	rec := &fakeAuditRecorder{}
	uc := NewAuthUseCase(userRepo, companyRepo, rec, JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "gestion-pro-test",
	})
	return uc, rec, user
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ExitosoRegistraAuditoria(t *testing.T) {
	uc, rec, user := newAuthFixture(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: user.Email, Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, user.Email, out.User.Email)

	require.Len(t, rec.actions, 1, "el login exitoso debe dejar una entrada en la bitácora")
	entry := rec.actions[0]
	assert.Equal(t, entity.AuditActionLogin, entry.Action)
	assert.Equal(t, "user", entry.EntityType)
	assert.Equal(t, user.CompanyID, entry.CompanyID)
	assert.Equal(t, user.ID, entry.UserID)
	assert.Equal(t, user.Email, entry.Details)
}

func TestLogin_PasswordIncorrecto_NoAudita(t *testing.T) {
	uc, rec, user := newAuthFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: user.Email, Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, rec.actions, "un login fallido no debe dejar entrada de auditoría")
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, rec, _ := newAuthFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@acme.co", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, rec.actions)
}

func TestLogin_CuentaInactiva_NoAudita(t *testing.T) {
	uc, rec, user := newAuthFixture(t)
	user.Status = "suspended"

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: user.Email, Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, rec.actions)
}

func TestLogin_SinRecorder_NoFalla(t *testing.T) {
	uc, _, user := newAuthFixture(t)
	uc.auditRec = nil

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: user.Email, Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_EmailDuplicadoEnEmpresa(t *testing.T) {
	uc, _, user := newAuthFixture(t)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     user.Email,
		Password:  testPassword,
		CompanyID: user.CompanyID.String(),
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_EmpresaInexistente(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "nueva@acme.co",
		Password:  testPassword,
		CompanyID: identifier.New().String(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterUser_CompanyIDInvalido(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "nueva@acme.co",
		Password:  testPassword,
		CompanyID: "no-es-un-id",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
