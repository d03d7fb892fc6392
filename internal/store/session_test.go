package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opticart/internal/domain"
)

func TestSessionLoginLogout(t *testing.T) {
	s := NewSession(nil)
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Token())

	u := &domain.User{ID: 7, Email: "iris@example.com", Name: "Iris", Role: "USER"}
	require.NoError(t, s.Login("tok-123", u))

	assert.True(t, s.LoggedIn())
	assert.Equal(t, "tok-123", s.Token())

	require.NoError(t, s.Logout())
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Token())
}

func TestSessionLoggedInNeedsBothTokenAndUser(t *testing.T) {
	s := NewSession(nil)

	require.NoError(t, s.Login("tok-123", nil))

	assert.False(t, s.LoggedIn(), "token without user is not a session")
}

func TestSessionSurvivesRestart(t *testing.T) {
	p := newMemPersister()
	s := NewSession(p)
	require.NoError(t, s.Login("tok-123", &domain.User{ID: 7, Name: "Iris"}))

	revived := NewSession(p)

	assert.True(t, revived.LoggedIn())
	assert.Equal(t, "tok-123", revived.Token())
	assert.Equal(t, "Iris", revived.Current().User.Name)
}

func TestOrdersDraftLifecycle(t *testing.T) {
	p := newMemPersister()
	o := NewOrders(p)
	_, ok := o.Draft()
	assert.False(t, ok)

	d := domain.OrderDraft{OrderID: "42", OrderNumber: "ORD-42", TotalAmount: 15000}
	require.NoError(t, o.SetDraft(d))

	got, ok := o.Draft()
	require.True(t, ok)
	assert.Equal(t, d, got)

	// survives a restart until consumed
	revived := NewOrders(p)
	got, ok = revived.Draft()
	require.True(t, ok)
	assert.Equal(t, d, got)

	require.NoError(t, revived.ClearDraft())
	_, ok = revived.Draft()
	assert.False(t, ok)
	_, ok = NewOrders(p).Draft()
	assert.False(t, ok, "clear removes the persisted copy too")
}
