//go:build api

package api

import (
	"context"
	"net/http"
	"testing"

	apperrors "teamsync/internal/errors"
	"teamsync/internal/models"
	"teamsync/pkg/response"
	"teamsync/test/api/testserver"
	"teamsync/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeam(t *testing.T) {
	identities := testserver.NewIdentityHelper(testServer)

	t.Run("creator becomes the team admin", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		user, tok := identities.ProvisionUser(t, "test|creator", "creator@example.com", "Creator")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams", tok,
			models.CreateTeamRequest{Name: "Engineering", Description: "builds things"})
		require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		require.True(t, resp.Success)

		team := testserver.ParseResponseData[models.Team](t, resp.Data.(map[string]interface{}))
		assert.Equal(t, "Engineering", team.Name)
		assert.Equal(t, user.ID, team.AdminID)

		// The creator's own affiliation now points at the new team.
		stored, err := testServer.UserRepo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.TeamID)
		assert.Equal(t, team.ID, *stored.TeamID)
		assert.Equal(t, models.RoleAdmin, stored.Role)

		// And an ADMIN membership row exists.
		m, err := testServer.MembershipRepo.FindByTeamAndUser(context.Background(), team.ID, user.ID)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, m.Role)
		assert.Equal(t, models.StatusAccepted, m.Status)
	})

	t.Run("user with a team cannot create another", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := testserver.NewTeamHelper(testServer).SetupTeam(t, "First Team")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams", setup.AdminToken,
			models.CreateTeamRequest{Name: "Second Team"})

		require.Equal(t, http.StatusConflict, w.Code, "body: %s", w.Body.String())

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		assert.Equal(t, apperrors.CodeAlreadyInTeam, resp.Code)
	})

	t.Run("rejects request without a token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams",
			models.CreateTeamRequest{Name: "No Auth Team"})

		require.Equal(t, http.StatusUnauthorized, w.Code)

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		assert.Equal(t, apperrors.CodeTokenMissing, resp.Code)
	})

	t.Run("rejects a too-short name", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		_, tok := identities.ProvisionUser(t, "test|shortname", "shortname@example.com", "Short Name")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams", tok,
			models.CreateTeamRequest{Name: "x"})

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAndUpdateTeam(t *testing.T) {
	teams := testserver.NewTeamHelper(testServer)
	identities := testserver.NewIdentityHelper(testServer)

	t.Run("members can view but not update", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Viewable Team")

		_, memberTok := identities.ProvisionUser(t, "test|viewer", "viewer@example.com", "Viewer")
		teams.InviteMember(t, setup.AdminToken, setup.TeamID.Hex(), "viewer@example.com", models.RoleMember)

		// Member can view
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/"+setup.TeamID.Hex(), memberTok, nil)
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		// Member cannot update
		newName := "Renamed"
		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/teams/"+setup.TeamID.Hex(), memberTok,
			models.UpdateTeamRequest{Name: &newName})
		require.Equal(t, http.StatusForbidden, w.Code)

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		assert.Equal(t, apperrors.CodeRoleForbidden, resp.Code)

		// Admin can update
		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/teams/"+setup.TeamID.Hex(), setup.AdminToken,
			models.UpdateTeamRequest{Name: &newName})
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		stored, err := testServer.TeamRepo.FindByID(context.Background(), setup.TeamID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", stored.Name)
	})

	t.Run("manager can update the team", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Managed Team")

		_, managerTok := identities.ProvisionUser(t, "test|steward", "steward@example.com", "Steward")
		teams.InviteMember(t, setup.AdminToken, setup.TeamID.Hex(), "steward@example.com", models.RoleManager)

		newName := "Steered Team"
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/teams/"+setup.TeamID.Hex(), managerTok,
			models.UpdateTeamRequest{Name: &newName})
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		stored, err := testServer.TeamRepo.FindByID(context.Background(), setup.TeamID)
		require.NoError(t, err)
		assert.Equal(t, "Steered Team", stored.Name)
	})

	t.Run("outsider cannot view the team", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Private Team")

		_, outsiderTok := identities.ProvisionUser(t, "test|outsider", "outsider@example.com", "Outsider")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/"+setup.TeamID.Hex(), outsiderTok, nil)
		require.Equal(t, http.StatusForbidden, w.Code)

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		assert.Equal(t, apperrors.CodeNotAMember, resp.Code)
	})

	t.Run("unknown team returns 404", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		_, tok := identities.ProvisionUser(t, "test|lost", "lost@example.com", "Lost")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/507f1f77bcf86cd799439011", tok, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteTeam(t *testing.T) {
	teams := testserver.NewTeamHelper(testServer)
	identities := testserver.NewIdentityHelper(testServer)
	projects := testserver.NewProjectHelper(testServer)
	tasks := testserver.NewTaskHelper(testServer)

	t.Run("deleting a team removes its data and releases members", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Doomed Team")

		member, _ := identities.ProvisionUser(t, "test|released", "released@example.com", "Released")
		teams.InviteMember(t, setup.AdminToken, setup.TeamID.Hex(), "released@example.com", models.RoleMember)

		projectData := projects.CreateProject(t, setup.AdminToken, setup.TeamID.Hex(), "Doomed Project")
		projectID := testserver.GetObjectIDFromResponse(t, projectData)
		tasks.CreateTask(t, setup.AdminToken, setup.TeamID.Hex(), projectID.Hex(), "Doomed Task")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/teams/"+setup.TeamID.Hex(), setup.AdminToken, nil)
		require.Equal(t, http.StatusNoContent, w.Code, "body: %s", w.Body.String())

		ctx := context.Background()

		_, err := testServer.TeamRepo.FindByID(ctx, setup.TeamID)
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)

		remaining, err := testServer.ProjectRepo.FindByTeamID(ctx, setup.TeamID)
		require.NoError(t, err)
		assert.Empty(t, remaining)

		memberships, err := testServer.MembershipRepo.FindByTeamID(ctx, setup.TeamID)
		require.NoError(t, err)
		assert.Empty(t, memberships)

		// Former members are released to create or join another team.
		released, err := testServer.UserRepo.FindByID(ctx, member.ID)
		require.NoError(t, err)
		assert.Nil(t, released.TeamID)
		assert.Equal(t, models.RoleMember, released.Role)
	})

	t.Run("manager cannot delete the team", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Sturdy Team")

		_, managerTok := identities.ProvisionUser(t, "test|mgr-del", "mgr-del@example.com", "Manager")
		teams.InviteMember(t, setup.AdminToken, setup.TeamID.Hex(), "mgr-del@example.com", models.RoleManager)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/teams/"+setup.TeamID.Hex(), managerTok, nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestListTeams(t *testing.T) {
	teams := testserver.NewTeamHelper(testServer)

	t.Run("lists the caller's administered team once", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Only Team")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams", setup.AdminToken, nil)
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		listing := testserver.ParseResponseData[models.TeamListResponse](t, resp.Data.(map[string]interface{}))
		require.Len(t, listing.Items, 1)
		assert.Equal(t, setup.TeamID, listing.Items[0].ID)
	})
}
