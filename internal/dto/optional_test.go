package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-tracker-api/internal/models"
)

func TestUpdateTaskRequest_DistinguishesOmittedFromNull(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title": null, "completed": true}`), &req))

	assert.True(t, req.Title.Set)
	assert.Nil(t, req.Title.Value)

	assert.True(t, req.Completed.Set)
	require.NotNil(t, req.Completed.Value)
	assert.True(t, *req.Completed.Value)

	assert.False(t, req.Priority.Set)
	assert.Nil(t, req.Priority.Value)
}

func TestUpdateTaskRequest_WrongType(t *testing.T) {
	var req UpdateTaskRequest
	assert.Error(t, json.Unmarshal([]byte(`{"title": 7}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"completed": "yes"}`), &req))
}

func TestOptional_Marshal(t *testing.T) {
	data, err := json.Marshal(UpdateTaskRequest{
		Title:    Some("Buy milk"),
		Priority: Some(models.TaskPriorityLow),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Buy milk","completed":null,"priority":"low"}`, string(data))
}

func TestCreateTaskRequest_OwnerID(t *testing.T) {
	assert.Equal(t, "u1", CreateTaskRequest{Owner: "u1", LegacyID: "u2"}.OwnerID())
	assert.Equal(t, "u2", CreateTaskRequest{LegacyID: "u2"}.OwnerID())
	assert.Empty(t, CreateTaskRequest{}.OwnerID())
}

func TestToTaskDTOs_Empty(t *testing.T) {
	data, err := json.Marshal(ToTaskDTOs(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
