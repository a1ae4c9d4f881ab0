//go:build api

package api

import (
	"context"
	"net/http"
	"testing"

	"teamsync/internal/models"
	"teamsync/pkg/response"
	"teamsync/test/api/testserver"
	"teamsync/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityFeed(t *testing.T) {
	teams := testserver.NewTeamHelper(testServer)
	identities := testserver.NewIdentityHelper(testServer)
	projects := testserver.NewProjectHelper(testServer)

	t.Run("team changes show up in the feed", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		testServer.StartActivityProcessor(ctx)
		defer testServer.StopActivityProcessor()

		setup := teams.SetupTeam(t, "Audited Team")
		teams.InviteMember(t, setup.AdminToken, setup.TeamID.Hex(), "audited.member@example.com", models.RoleMember)
		projects.CreateProject(t, setup.AdminToken, setup.TeamID.Hex(), "Audited Project")

		// team created + member invited + project created
		activities := testserver.WaitForActivity(t, testServer, setup.TeamID, 3)

		kinds := make(map[models.ActivityKind]bool)
		for _, a := range activities {
			assert.Equal(t, setup.TeamID, a.TeamID)
			kinds[a.Kind] = true
		}
		assert.True(t, kinds[models.ActivityTeamCreated])
		assert.True(t, kinds[models.ActivityMemberInvited])
		assert.True(t, kinds[models.ActivityProjectCreated])
	})

	t.Run("feed is visible to managers but not members", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		setup := teams.SetupTeam(t, "Watched Team")

		_, managerTok := identities.ProvisionUser(t, "test|auditor", "auditor@example.com", "Auditor")
		teams.InviteMember(t, setup.AdminToken, setup.TeamID.Hex(), "auditor@example.com", models.RoleManager)
		_, memberTok := identities.ProvisionUser(t, "test|watched", "watched@example.com", "Watched")
		teams.InviteMember(t, setup.AdminToken, setup.TeamID.Hex(), "watched@example.com", models.RoleMember)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/teams/"+setup.TeamID.Hex()+"/activity", managerTok, nil)
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		require.True(t, resp.Success)

		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/teams/"+setup.TeamID.Hex()+"/activity", memberTok, nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
