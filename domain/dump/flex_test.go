package dump

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuest_DecodesMixedShapes(t *testing.T) {
	raw := `{
		"Name": "Cheese Delivery",
		"Requirements": {"T": "MinFavorLevel", "Npc": "NPC_Joeh", "Level": "Comfortable"},
		"Objectives": [
			{"Type": "Collect", "Description": "Bring cheese", "Number": 3, "ItemName": "Cheese", "Target": "Joeh"},
			{"Type": "Kill", "Description": "Slay rats", "Number": 5, "Target": ["Rat", "BigRat"]}
		],
		"Rewards_Favor": 50,
		"Rewards": [{"T": "SkillXp", "Skill": "Cheesemaking", "Xp": 100}],
		"Rewards_Items": [{"Item": "Milk", "StackSize": 2}]
	}`

	var q Quest
	require.NoError(t, json.Unmarshal([]byte(raw), &q))

	require.Len(t, q.Requirements, 1)
	assert.Equal(t, FlexString("Comfortable"), q.Requirements[0].Level)
	assert.Equal(t, FlexStrings{"Joeh"}, q.Objectives[0].Target)
	assert.Equal(t, FlexStrings{"Rat", "BigRat"}, q.Objectives[1].Target)
	assert.Equal(t, 50, q.RewardsFavor)
	assert.Equal(t, "Milk", q.RewardsItems[0].Item)
}

func TestRequirements_Array(t *testing.T) {
	var r Requirements
	require.NoError(t, json.Unmarshal([]byte(`[{"T":"MinSkillLevel","Skill":"Cooking","Level":25}]`), &r))

	require.Len(t, r, 1)
	level, ok := r[0].Level.Int()
	assert.True(t, ok)
	assert.Equal(t, 25, level)
}

func TestFlexString_RejectsObjects(t *testing.T) {
	var f FlexString
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &f))
}
