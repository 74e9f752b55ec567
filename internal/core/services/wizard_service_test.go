package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quickfunds/loanflow_backend/internal/apperrors"
	"github.com/quickfunds/loanflow_backend/internal/core/domain"
	"github.com/quickfunds/loanflow_backend/internal/core/ports"
	"github.com/quickfunds/loanflow_backend/internal/core/services"
)

// --- Mock DraftStore ---
type MockDraftStore struct {
	mock.Mock
	LoadDraftFn       func(ctx context.Context, sessionID string) (*domain.ApplicantDraft, error)
	SaveDraftFn       func(ctx context.Context, sessionID string, draft domain.ApplicantDraft) error
	ClearDraftFn      func(ctx context.Context, sessionID string) error
	LoadStep2RecallFn func(ctx context.Context, sessionID string) (*domain.Step2Recall, error)
	SaveStep2RecallFn func(ctx context.Context, sessionID string, recall domain.Step2Recall) error
}

func (m *MockDraftStore) LoadDraft(ctx context.Context, sessionID string) (*domain.ApplicantDraft, error) {
	if m.LoadDraftFn != nil {
		return m.LoadDraftFn(ctx, sessionID)
	}
	args := m.Called(ctx, sessionID)
	var draft *domain.ApplicantDraft
	if args.Get(0) != nil {
		draft = args.Get(0).(*domain.ApplicantDraft)
	}
	return draft, args.Error(1)
}

func (m *MockDraftStore) SaveDraft(ctx context.Context, sessionID string, draft domain.ApplicantDraft) error {
	if m.SaveDraftFn != nil {
		return m.SaveDraftFn(ctx, sessionID, draft)
	}
	args := m.Called(ctx, sessionID, draft)
	return args.Error(0)
}

func (m *MockDraftStore) ClearDraft(ctx context.Context, sessionID string) error {
	if m.ClearDraftFn != nil {
		return m.ClearDraftFn(ctx, sessionID)
	}
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockDraftStore) LoadStep2Recall(ctx context.Context, sessionID string) (*domain.Step2Recall, error) {
	if m.LoadStep2RecallFn != nil {
		return m.LoadStep2RecallFn(ctx, sessionID)
	}
	args := m.Called(ctx, sessionID)
	var recall *domain.Step2Recall
	if args.Get(0) != nil {
		recall = args.Get(0).(*domain.Step2Recall)
	}
	return recall, args.Error(1)
}

func (m *MockDraftStore) SaveStep2Recall(ctx context.Context, sessionID string, recall domain.Step2Recall) error {
	if m.SaveStep2RecallFn != nil {
		return m.SaveStep2RecallFn(ctx, sessionID, recall)
	}
	args := m.Called(ctx, sessionID, recall)
	return args.Error(0)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
	IssueTokenFn  func(ctx context.Context, sessionID string) (string, error)
	VerifyTokenFn func(ctx context.Context, sessionID, token string) (bool, error)
}

func (m *MockTokenService) IssueToken(ctx context.Context, sessionID string) (string, error) {
	if m.IssueTokenFn != nil {
		return m.IssueTokenFn(ctx, sessionID)
	}
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) VerifyToken(ctx context.Context, sessionID, token string) (bool, error) {
	if m.VerifyTokenFn != nil {
		return m.VerifyTokenFn(ctx, sessionID, token)
	}
	args := m.Called(ctx, sessionID, token)
	return args.Bool(0), args.Error(1)
}

// --- Mock HumanVerifier ---
type MockHumanVerifier struct {
	mock.Mock
	RequiredFn  func(formID string) bool
	ChallengeFn func(ctx context.Context, sessionID string) (ports.CaptchaChallenge, error)
	VerifyFn    func(ctx context.Context, sessionID, answer string) (bool, error)
}

func (m *MockHumanVerifier) Required(formID string) bool {
	if m.RequiredFn != nil {
		return m.RequiredFn(formID)
	}
	args := m.Called(formID)
	return args.Bool(0)
}

func (m *MockHumanVerifier) Challenge(ctx context.Context, sessionID string) (ports.CaptchaChallenge, error) {
	if m.ChallengeFn != nil {
		return m.ChallengeFn(ctx, sessionID)
	}
	args := m.Called(ctx, sessionID)
	return args.Get(0).(ports.CaptchaChallenge), args.Error(1)
}

func (m *MockHumanVerifier) Verify(ctx context.Context, sessionID, answer string) (bool, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, sessionID, answer)
	}
	args := m.Called(ctx, sessionID, answer)
	return args.Bool(0), args.Error(1)
}

// --- Mock SubmissionSvcFacade ---
type MockSubmissionService struct {
	mock.Mock
	FinalizeFn          func(ctx context.Context, draft domain.ApplicantDraft, step2 domain.EmploymentDetails, consents domain.Consents, password string) (*domain.LoanApplication, error)
	LookupByReferenceFn func(ctx context.Context, ref string) (*domain.LoanApplication, error)
}

func (m *MockSubmissionService) Finalize(ctx context.Context, draft domain.ApplicantDraft, step2 domain.EmploymentDetails, consents domain.Consents, password string) (*domain.LoanApplication, error) {
	if m.FinalizeFn != nil {
		return m.FinalizeFn(ctx, draft, step2, consents, password)
	}
	args := m.Called(ctx, draft, step2, consents, password)
	var app *domain.LoanApplication
	if args.Get(0) != nil {
		app = args.Get(0).(*domain.LoanApplication)
	}
	return app, args.Error(1)
}

func (m *MockSubmissionService) LookupByReference(ctx context.Context, ref string) (*domain.LoanApplication, error) {
	if m.LookupByReferenceFn != nil {
		return m.LookupByReferenceFn(ctx, ref)
	}
	args := m.Called(ctx, ref)
	var app *domain.LoanApplication
	if args.Get(0) != nil {
		app = args.Get(0).(*domain.LoanApplication)
	}
	return app, args.Error(1)
}

type wizardFixture struct {
	drafts    *MockDraftStore
	tokens    *MockTokenService
	captcha   *MockHumanVerifier
	finalizer *MockSubmissionService
	svc       *services.WizardService
}

func newWizardFixture() *wizardFixture {
	f := &wizardFixture{
		drafts:    &MockDraftStore{},
		tokens:    &MockTokenService{},
		captcha:   &MockHumanVerifier{},
		finalizer: &MockSubmissionService{},
	}
	f.tokens.IssueTokenFn = func(ctx context.Context, sessionID string) (string, error) { return "tok-1", nil }
	f.tokens.VerifyTokenFn = func(ctx context.Context, sessionID, token string) (bool, error) { return token == "tok-1", nil }
	f.captcha.RequiredFn = func(formID string) bool { return false }
	f.svc = services.NewWizardService(f.drafts, f.tokens, f.captcha, services.NewCountryService(), services.NewFieldValidator(), f.finalizer)
	return f
}

func TestBeginStep1_IssuesTokenAndFormatsBounds(t *testing.T) {
	f := newWizardFixture()
	f.drafts.LoadDraftFn = func(ctx context.Context, sessionID string) (*domain.ApplicantDraft, error) { return nil, nil }

	view, err := f.svc.BeginStep1(context.Background(), "sess-1", "CAN")

	require.NoError(t, err)
	assert.Equal(t, "tok-1", view.CSRFToken)
	assert.Equal(t, "CAN", view.Country.Code)
	assert.Equal(t, "C$1,000", view.MinAmount)
	assert.Equal(t, "C$150,000", view.MaxAmount)
	assert.Nil(t, view.Draft)
}

func TestBeginStep1_UnknownCountryFallsBack(t *testing.T) {
	f := newWizardFixture()
	f.drafts.LoadDraftFn = func(ctx context.Context, sessionID string) (*domain.ApplicantDraft, error) { return nil, nil }

	view, err := f.svc.BeginStep1(context.Background(), "sess-1", "ZZZ")

	require.NoError(t, err)
	assert.Equal(t, "USA", view.Country.Code)
	assert.Equal(t, "$1,000", view.MinAmount)
}

func TestSubmitStep1_SavesDraftAndAdvances(t *testing.T) {
	f := newWizardFixture()
	var saved *domain.ApplicantDraft
	f.drafts.SaveDraftFn = func(ctx context.Context, sessionID string, draft domain.ApplicantDraft) error {
		saved = &draft
		return nil
	}

	req := validStep1Request()
	req.CSRFToken = "tok-1"
	violations, err := f.svc.SubmitStep1(context.Background(), "sess-1", req)

	require.NoError(t, err)
	assert.Empty(t, violations)
	require.NotNil(t, saved)
	assert.Equal(t, "sess-1", saved.SessionID)
	assert.Equal(t, "Ada", saved.Personal.FirstName)
	assert.True(t, saved.Loan.Amount.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, domain.LoanPersonal, saved.Loan.Type)
}

func TestSubmitStep1_CSRFFailureIsGeneric(t *testing.T) {
	f := newWizardFixture()

	req := validStep1Request()
	req.CSRFToken = "stolen"
	violations, err := f.svc.SubmitStep1(context.Background(), "sess-1", req)

	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "form", violations[0].Field)
	assert.Equal(t, "Security verification failed. Please try again.", violations[0].Message)
}

func TestSubmitStep1_ViolationsDoNotTouchDraft(t *testing.T) {
	f := newWizardFixture()
	f.drafts.SaveDraftFn = func(ctx context.Context, sessionID string, draft domain.ApplicantDraft) error {
		t.Fatal("draft must not be saved for an invalid submission")
		return nil
	}

	req := validStep1Request()
	req.CSRFToken = "tok-1"
	req.Email = ""
	violations, err := f.svc.SubmitStep1(context.Background(), "sess-1", req)

	require.NoError(t, err)
	assert.NotEmpty(t, violations)
}

func TestBeginStep2_WithoutDraftRestarts(t *testing.T) {
	f := newWizardFixture()
	f.drafts.LoadDraftFn = func(ctx context.Context, sessionID string) (*domain.ApplicantDraft, error) { return nil, nil }

	_, err := f.svc.BeginStep2(context.Background(), "sess-1")

	assert.ErrorIs(t, err, apperrors.ErrStateRestart)
}

func TestBeginStep2_IncludesRecallAndCaptcha(t *testing.T) {
	f := newWizardFixture()
	draft := &domain.ApplicantDraft{SessionID: "sess-1"}
	recall := &domain.Step2Recall{MonthlyIncome: "4500"}
	f.drafts.LoadDraftFn = func(ctx context.Context, sessionID string) (*domain.ApplicantDraft, error) { return draft, nil }
	f.drafts.LoadStep2RecallFn = func(ctx context.Context, sessionID string) (*domain.Step2Recall, error) { return recall, nil }
	f.captcha.RequiredFn = func(formID string) bool { return formID == services.LoanApplicationFormID }
	f.captcha.ChallengeFn = func(ctx context.Context, sessionID string) (ports.CaptchaChallenge, error) {
		return ports.CaptchaChallenge{Question: "What is 2 + 3?"}, nil
	}

	view, err := f.svc.BeginStep2(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Equal(t, "tok-1", view.CSRFToken)
	require.NotNil(t, view.Recall)
	assert.Equal(t, "4500", view.Recall.MonthlyIncome)
	require.NotNil(t, view.Captcha)
	assert.Equal(t, "What is 2 + 3?", view.Captcha.Question)
}

func TestSaveStep2Recall_DelegatesToStore(t *testing.T) {
	f := newWizardFixture()
	var saved domain.Step2Recall
	f.drafts.SaveStep2RecallFn = func(ctx context.Context, sessionID string, recall domain.Step2Recall) error {
		saved = recall
		return nil
	}

	err := f.svc.SaveStep2Recall(context.Background(), "sess-1", domain.Step2Recall{EmployerName: "Engine Works"})

	require.NoError(t, err)
	assert.Equal(t, "Engine Works", saved.EmployerName)
}

func TestSubmitStep2_WithoutDraftRestarts(t *testing.T) {
	f := newWizardFixture()
	f.drafts.LoadDraftFn = func(ctx context.Context, sessionID string) (*domain.ApplicantDraft, error) { return nil, nil }

	req := validStep2Request()
	req.CSRFToken = "tok-1"
	_, _, err := f.svc.SubmitStep2(context.Background(), "sess-1", req)

	assert.ErrorIs(t, err, apperrors.ErrStateRestart)
}

func TestSubmitStep2_CaptchaFailureIsGeneric(t *testing.T) {
	f := newWizardFixture()
	draft := &domain.ApplicantDraft{SessionID: "sess-1"}
	f.drafts.LoadDraftFn = func(ctx context.Context, sessionID string) (*domain.ApplicantDraft, error) { return draft, nil }
	f.captcha.RequiredFn = func(formID string) bool { return true }
	f.captcha.VerifyFn = func(ctx context.Context, sessionID, answer string) (bool, error) { return false, nil }

	req := validStep2Request()
	req.CSRFToken = "tok-1"
	req.CaptchaAnswer = "7"
	app, violations, err := f.svc.SubmitStep2(context.Background(), "sess-1", req)

	require.NoError(t, err)
	assert.Nil(t, app)
	require.Len(t, violations, 1)
	assert.Equal(t, "Security verification failed. Please try again.", violations[0].Message)
}

func TestSubmitStep2_FinalizesWithTypedValues(t *testing.T) {
	f := newWizardFixture()
	draft := &domain.ApplicantDraft{
		SessionID: "sess-1",
		Personal:  domain.PersonalDetails{FirstName: "Ada", Email: "ada@example.com"},
	}
	f.drafts.LoadDraftFn = func(ctx context.Context, sessionID string) (*domain.ApplicantDraft, error) { return draft, nil }

	var gotStep2 domain.EmploymentDetails
	var gotConsents domain.Consents
	var gotPassword string
	persisted := &domain.LoanApplication{ReferenceNumber: "482913", Status: domain.StatusPending}
	f.finalizer.FinalizeFn = func(ctx context.Context, d domain.ApplicantDraft, step2 domain.EmploymentDetails, consents domain.Consents, password string) (*domain.LoanApplication, error) {
		gotStep2 = step2
		gotConsents = consents
		gotPassword = password
		return persisted, nil
	}

	req := validStep2Request()
	req.CSRFToken = "tok-1"
	req.ExistingDebts = "1250.50"
	app, violations, err := f.svc.SubmitStep2(context.Background(), "sess-1", req)

	require.NoError(t, err)
	assert.Empty(t, violations)
	require.NotNil(t, app)
	assert.Equal(t, "482913", app.ReferenceNumber)
	assert.Equal(t, domain.StatusPending, app.Status)

	assert.True(t, gotStep2.MonthlyIncome.Equal(decimal.NewFromInt(4500)))
	assert.True(t, gotStep2.ExistingDebts.Equal(decimal.RequireFromString("1250.50")))
	assert.True(t, gotConsents.AgreeTerms)
	assert.True(t, gotConsents.CreditCheckOK)
	assert.Equal(t, "hunter2hunter2", gotPassword)
}

func TestSubmitStep2_ValidationShortCircuitsFinalizer(t *testing.T) {
	f := newWizardFixture()
	draft := &domain.ApplicantDraft{SessionID: "sess-1"}
	f.drafts.LoadDraftFn = func(ctx context.Context, sessionID string) (*domain.ApplicantDraft, error) { return draft, nil }
	f.finalizer.FinalizeFn = func(ctx context.Context, d domain.ApplicantDraft, step2 domain.EmploymentDetails, consents domain.Consents, password string) (*domain.LoanApplication, error) {
		t.Fatal("finalizer must not run for an invalid submission")
		return nil, nil
	}

	req := validStep2Request()
	req.CSRFToken = "tok-1"
	req.Password = "short"
	app, violations, err := f.svc.SubmitStep2(context.Background(), "sess-1", req)

	require.NoError(t, err)
	assert.Nil(t, app)
	assert.NotEmpty(t, violations)
}
