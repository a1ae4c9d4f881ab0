package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityKind identifies what a recorded activity describes.
type ActivityKind string

// Activity kind constants.
const (
	ActivityTeamCreated    ActivityKind = "TEAM_CREATED"
	ActivityMemberInvited  ActivityKind = "MEMBER_INVITED"
	ActivityMemberRemoved  ActivityKind = "MEMBER_REMOVED"
	ActivityRoleChanged    ActivityKind = "ROLE_CHANGED"
	ActivityProjectCreated ActivityKind = "PROJECT_CREATED"
	ActivityProjectDeleted ActivityKind = "PROJECT_DELETED"
	ActivityTaskCreated    ActivityKind = "TASK_CREATED"
	ActivityTaskMoved      ActivityKind = "TASK_MOVED"
	ActivityTaskAssigned   ActivityKind = "TASK_ASSIGNED"
	ActivityTaskDeleted    ActivityKind = "TASK_DELETED"
	ActivityMessagePosted  ActivityKind = "MESSAGE_POSTED"
)

// Activity is an audit record of a change within a team. Records are written
// asynchronously off the request path and are best effort.
type Activity struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TeamID    primitive.ObjectID `json:"teamId" bson:"teamId"`
	ActorID   primitive.ObjectID `json:"actorId" bson:"actorId"`
	Kind      ActivityKind       `json:"kind" bson:"kind" example:"TASK_CREATED"`
	Detail    string             `json:"detail" bson:"detail" example:"created task \"Implement login page\""`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// ActivityListResponse is the response for listing team activity.
type ActivityListResponse struct {
	Items []Activity `json:"items"`
}
