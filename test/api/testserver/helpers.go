//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"teamsync/internal/models"
	"teamsync/pkg/response"
	"teamsync/pkg/token"
	"teamsync/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IdentityHelper provides identity helpers for API tests. The service trusts
// verified bearer tokens and auto-provisions users, so tests mint their own
// tokens with the shared test secret.
type IdentityHelper struct {
	server *TestServer
}

// NewIdentityHelper creates a new identity helper.
func NewIdentityHelper(server *TestServer) *IdentityHelper {
	return &IdentityHelper{server: server}
}

// IssueToken signs a bearer token for the given identity.
func (ih *IdentityHelper) IssueToken(t *testing.T, subject, email, name string) string {
	t.Helper()

	signed, err := ih.server.Verifier.Issue(token.Identity{
		Subject: subject,
		Email:   email,
		Name:    name,
	})
	require.NoError(t, err, "failed to issue test token")

	return signed
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ih *IdentityHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := context.Background()

	err := ih.server.UserRepo.Create(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// ProvisionUser issues a token for a fresh identity and makes one
// authenticated request so the resolver provisions the user, then returns
// the stored user and the token.
func (ih *IdentityHelper) ProvisionUser(t *testing.T, subject, email, name string) (*models.User, string) {
	t.Helper()

	tok := ih.IssueToken(t, subject, email, name)

	w := testutil.MakeAuthRequest(t, ih.server.Router, http.MethodGet, "/api/v1/teams", tok, nil)
	require.Equal(t, http.StatusOK, w.Code, "provisioning request should return 200, got: %s", w.Body.String())

	user, err := ih.server.UserRepo.FindByEmail(context.Background(), email)
	require.NoError(t, err, "provisioned user should exist")

	return user, tok
}

// TeamHelper provides team-related helpers for API tests.
type TeamHelper struct {
	server *TestServer
}

// NewTeamHelper creates a new team helper.
func NewTeamHelper(server *TestServer) *TeamHelper {
	return &TeamHelper{server: server}
}

// CreateTeam creates a new team via the API and returns the team data.
func (th *TeamHelper) CreateTeam(t *testing.T, token, name string) map[string]interface{} {
	t.Helper()

	req := models.CreateTeamRequest{
		Name: name,
	}

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/teams", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create team should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create team response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// InviteMember invites a user via the API and returns the membership data.
func (th *TeamHelper) InviteMember(t *testing.T, token, teamID, email string, role models.Role) map[string]interface{} {
	t.Helper()

	req := models.InviteMemberRequest{
		Email: email,
		Role:  role,
	}

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/members", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "invite member should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "invite member response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// SeedTeam directly inserts a team into the database (bypasses API).
func (th *TeamHelper) SeedTeam(t *testing.T, team *models.Team) *models.Team {
	t.Helper()
	ctx := context.Background()

	err := th.server.TeamRepo.Create(ctx, team)
	require.NoError(t, err, "failed to seed team")

	return team
}

// SeedMembership directly inserts a membership into the database.
func (th *TeamHelper) SeedMembership(t *testing.T, membership *models.Membership) *models.Membership {
	t.Helper()
	ctx := context.Background()

	err := th.server.MembershipRepo.Create(ctx, membership)
	require.NoError(t, err, "failed to seed membership")

	return membership
}

// TeamSetup is a provisioned team with its admin for scenario tests.
type TeamSetup struct {
	TeamID     primitive.ObjectID
	Admin      *models.User
	AdminToken string
}

// SetupTeam provisions an admin user and creates a team through the API.
func (th *TeamHelper) SetupTeam(t *testing.T, name string) *TeamSetup {
	t.Helper()

	identities := NewIdentityHelper(th.server)
	suffix := primitive.NewObjectID().Hex()[:8]
	admin, tok := identities.ProvisionUser(t, "test|admin-"+suffix, "admin-"+suffix+"@example.com", "Admin "+suffix)

	data := th.CreateTeam(t, tok, name)
	teamID := GetObjectIDFromResponse(t, data)

	// Refresh the admin so TeamID and Role reflect team creation.
	admin, err := th.server.UserRepo.FindByID(context.Background(), admin.ID)
	require.NoError(t, err)

	return &TeamSetup{
		TeamID:     teamID,
		Admin:      admin,
		AdminToken: tok,
	}
}

// ProjectHelper provides project helpers for API tests.
type ProjectHelper struct {
	server *TestServer
}

// NewProjectHelper creates a new project helper.
func NewProjectHelper(server *TestServer) *ProjectHelper {
	return &ProjectHelper{server: server}
}

// CreateProject creates a project via the API and returns the project data.
func (ph *ProjectHelper) CreateProject(t *testing.T, token, teamID, name string) map[string]interface{} {
	t.Helper()

	req := models.CreateProjectRequest{
		Name: name,
	}

	w := testutil.MakeAuthRequest(t, ph.server.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/projects", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create project should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create project response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// TaskHelper provides task helpers for API tests.
type TaskHelper struct {
	server *TestServer
}

// NewTaskHelper creates a new task helper.
func NewTaskHelper(server *TestServer) *TaskHelper {
	return &TaskHelper{server: server}
}

// CreateTask creates a task via the API and returns the task data.
func (th *TaskHelper) CreateTask(t *testing.T, token, teamID, projectID, title string) map[string]interface{} {
	t.Helper()

	req := models.CreateTaskRequest{
		Title: title,
	}

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/projects/"+projectID+"/tasks", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create task should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create task response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data.
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	t.Fatal("id should be a string in response data")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	idStr := GetIDFromResponse(t, data)
	oid, err := primitive.ObjectIDFromHex(idStr)
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}

// WaitForActivity polls the activity collection until at least n records exist
// for the team or the timeout elapses. Activity writes are asynchronous, so
// assertions on them need to wait.
func WaitForActivity(t *testing.T, ts *TestServer, teamID primitive.ObjectID, n int) []models.Activity {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		activities, err := ts.ActivityRepo.FindByTeamID(context.Background(), teamID, 100)
		require.NoError(t, err)
		if len(activities) >= n {
			return activities
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatalf("timed out waiting for %d activity records for team %s", n, teamID.Hex())
	return nil
}
