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

func TestCreateProject(t *testing.T) {
	teams := testserver.NewTeamHelper(testServer)
	identities := testserver.NewIdentityHelper(testServer)

	t.Run("manager can create projects", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Builder Team")

		_, managerTok := identities.ProvisionUser(t, "test|builder", "builder@example.com", "Builder")
		teams.InviteMember(t, setup.AdminToken, setup.TeamID.Hex(), "builder@example.com", models.RoleManager)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost,
			"/api/v1/teams/"+setup.TeamID.Hex()+"/projects", managerTok,
			models.CreateProjectRequest{Name: "Roadmap", Description: "H2 roadmap"})
		require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		project := testserver.ParseResponseData[models.Project](t, resp.Data.(map[string]interface{}))
		assert.Equal(t, setup.TeamID, project.TeamID)
		assert.Equal(t, setup.Admin.ID, project.AdminID)
	})

	t.Run("member cannot create projects", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Readonly Team")

		_, memberTok := identities.ProvisionUser(t, "test|reader", "reader@example.com", "Reader")
		teams.InviteMember(t, setup.AdminToken, setup.TeamID.Hex(), "reader@example.com", models.RoleMember)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost,
			"/api/v1/teams/"+setup.TeamID.Hex()+"/projects", memberTok,
			models.CreateProjectRequest{Name: "Denied"})
		require.Equal(t, http.StatusForbidden, w.Code)

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		assert.Equal(t, apperrors.CodeRoleForbidden, resp.Code)
	})
}

func TestListProjects(t *testing.T) {
	teams := testserver.NewTeamHelper(testServer)
	projects := testserver.NewProjectHelper(testServer)

	t.Run("listing is cached and invalidated on create", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Cached Team")

		projects.CreateProject(t, setup.AdminToken, setup.TeamID.Hex(), "First")

		// Prime the cache.
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/teams/"+setup.TeamID.Hex()+"/projects", setup.AdminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		// A second create must invalidate the cached listing.
		projects.CreateProject(t, setup.AdminToken, setup.TeamID.Hex(), "Second")

		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/teams/"+setup.TeamID.Hex()+"/projects", setup.AdminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		listing := testserver.ParseResponseData[models.ProjectListResponse](t, resp.Data.(map[string]interface{}))
		assert.Len(t, listing.Items, 2)
	})
}

func TestUpdateProject(t *testing.T) {
	teams := testserver.NewTeamHelper(testServer)
	projects := testserver.NewProjectHelper(testServer)

	t.Run("admin updates a project", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Editing Team")

		data := projects.CreateProject(t, setup.AdminToken, setup.TeamID.Hex(), "Draft")
		projectID := testserver.GetObjectIDFromResponse(t, data)

		newName := "Final"
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut,
			"/api/v1/teams/"+setup.TeamID.Hex()+"/projects/"+projectID.Hex(), setup.AdminToken,
			models.UpdateProjectRequest{Name: &newName})
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		stored, err := testServer.ProjectRepo.FindByID(context.Background(), projectID)
		require.NoError(t, err)
		assert.Equal(t, "Final", stored.Name)
	})

	t.Run("project from another team is not reachable", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Here Team")
		other := teams.SetupTeam(t, "There Team")

		data := projects.CreateProject(t, other.AdminToken, other.TeamID.Hex(), "Foreign")
		projectID := testserver.GetObjectIDFromResponse(t, data)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/teams/"+setup.TeamID.Hex()+"/projects/"+projectID.Hex(), setup.AdminToken, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteProject(t *testing.T) {
	teams := testserver.NewTeamHelper(testServer)
	projects := testserver.NewProjectHelper(testServer)
	tasks := testserver.NewTaskHelper(testServer)
	identities := testserver.NewIdentityHelper(testServer)

	t.Run("deleting a project removes its tasks", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Cleanup Team")

		data := projects.CreateProject(t, setup.AdminToken, setup.TeamID.Hex(), "Short Lived")
		projectID := testserver.GetObjectIDFromResponse(t, data)
		tasks.CreateTask(t, setup.AdminToken, setup.TeamID.Hex(), projectID.Hex(), "Orphan Candidate")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete,
			"/api/v1/teams/"+setup.TeamID.Hex()+"/projects/"+projectID.Hex(), setup.AdminToken, nil)
		require.Equal(t, http.StatusNoContent, w.Code, "body: %s", w.Body.String())

		ctx := context.Background()
		_, err := testServer.ProjectRepo.FindByID(ctx, projectID)
		assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)

		remaining, err := testServer.TaskRepo.FindByProjectID(ctx, projectID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("manager cannot delete projects", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Keep Team")

		data := projects.CreateProject(t, setup.AdminToken, setup.TeamID.Hex(), "Keeper")
		projectID := testserver.GetObjectIDFromResponse(t, data)

		_, managerTok := identities.ProvisionUser(t, "test|janitor", "janitor@example.com", "Janitor")
		teams.InviteMember(t, setup.AdminToken, setup.TeamID.Hex(), "janitor@example.com", models.RoleManager)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete,
			"/api/v1/teams/"+setup.TeamID.Hex()+"/projects/"+projectID.Hex(), managerTok, nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
