package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() UserState {
	return UserState{
		ID:        42,
		Username:  "bob",
		Email:     "bob@example.com",
		Role:      "user",
		UpdatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestMakeAndCheckCode(t *testing.T) {
	g := NewGenerator("test-secret", time.Hour)
	st := testState()

	code := g.MakeCode(st)
	require.NotEmpty(t, code)
	assert.True(t, g.CheckCode(st, code))
}

func TestCheckCode_WrongCode(t *testing.T) {
	g := NewGenerator("test-secret", time.Hour)
	st := testState()

	assert.False(t, g.CheckCode(st, "not-a-code"))
	assert.False(t, g.CheckCode(st, ""))
	assert.False(t, g.CheckCode(st, "zzzz"))
}

func TestCheckCode_DifferentSecret(t *testing.T) {
	st := testState()
	code := NewGenerator("secret-a", time.Hour).MakeCode(st)

	assert.False(t, NewGenerator("secret-b", time.Hour).CheckCode(st, code))
}

func TestCheckCode_InvalidatedByProfileChange(t *testing.T) {
	g := NewGenerator("test-secret", time.Hour)
	st := testState()
	code := g.MakeCode(st)

	changed := st
	changed.Email = "new@example.com"
	assert.False(t, g.CheckCode(changed, code), "email change must revoke the code")

	changed = st
	changed.Role = "admin"
	assert.False(t, g.CheckCode(changed, code), "role change must revoke the code")

	changed = st
	changed.UpdatedAt = st.UpdatedAt.Add(time.Second)
	assert.False(t, g.CheckCode(changed, code), "any save must revoke the code")

	// unchanged state still verifies
	assert.True(t, g.CheckCode(st, code))
}

func TestCheckCode_Expiry(t *testing.T) {
	g := NewGenerator("test-secret", 10*time.Minute)
	st := testState()

	issued := time.Now()
	g.now = func() time.Time { return issued }
	code := g.MakeCode(st)

	g.now = func() time.Time { return issued.Add(9 * time.Minute) }
	assert.True(t, g.CheckCode(st, code))

	g.now = func() time.Time { return issued.Add(11 * time.Minute) }
	assert.False(t, g.CheckCode(st, code))

	// clock going backwards is treated as invalid, not as fresh
	g.now = func() time.Time { return issued.Add(-time.Minute) }
	assert.False(t, g.CheckCode(st, code))
}

func TestMakeCode_DistinctUsers(t *testing.T) {
	g := NewGenerator("test-secret", time.Hour)
	a := testState()
	b := testState()
	b.ID = 43
	b.Username = "alice"

	code := g.MakeCode(a)
	assert.False(t, g.CheckCode(b, code))
}
