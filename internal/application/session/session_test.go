package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmel-jorhat/student-portal/internal/domain/shared"
	"github.com/carmel-jorhat/student-portal/internal/domain/student"
	"github.com/carmel-jorhat/student-portal/internal/infrastructure/persistence/memory"
)

func newTestRepo(t *testing.T) student.Repository {
	t.Helper()

	var students []*student.Student
	for roll, name := range map[int]string{1: "Arjun Mehta", 2: "Bhavna Agarwal"} {
		st, err := student.NewStudent(student.NewStudentParams{
			RollNumber:      student.RollNumber(roll),
			Name:            name,
			AdmissionNumber: student.AdmissionNumber(10000 + roll),
			Marks:           student.Marks{"Mathematics": 30},
		})
		require.NoError(t, err)
		students = append(students, st)
	}

	store, err := memory.NewStore(students, nil, nil, nil)
	require.NoError(t, err)
	return store
}

func TestAuthenticate_KnownRollNumber(t *testing.T) {
	ctx := context.Background()
	sess := New(newTestRepo(t))

	assert.False(t, sess.IsAuthenticated())

	st, err := sess.Authenticate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Arjun Mehta", st.Name)
	assert.True(t, sess.IsAuthenticated())
	assert.Same(t, st, sess.Current())
}

func TestAuthenticate_UnknownRollNumberKeepsPriorState(t *testing.T) {
	ctx := context.Background()
	sess := New(newTestRepo(t))

	// Fails from empty: session stays empty.
	_, err := sess.Authenticate(ctx, 99)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.False(t, sess.IsAuthenticated())

	// Fails after a successful login: the earlier student is kept.
	_, err = sess.Authenticate(ctx, 2)
	require.NoError(t, err)
	_, err = sess.Authenticate(ctx, 99)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	require.True(t, sess.IsAuthenticated())
	assert.Equal(t, student.RollNumber(2), sess.Current().RollNumber)
}

func TestAuthenticate_RejectsNonPositiveRoll(t *testing.T) {
	ctx := context.Background()
	sess := New(newTestRepo(t))

	_, err := sess.Authenticate(ctx, 0)
	assert.ErrorIs(t, err, shared.ErrInvalidID)
}

func TestLogout_ClearsUnconditionally(t *testing.T) {
	ctx := context.Background()
	sess := New(newTestRepo(t))

	// Safe on an empty session.
	sess.Logout()
	assert.False(t, sess.IsAuthenticated())

	_, err := sess.Authenticate(ctx, 1)
	require.NoError(t, err)
	sess.Logout()
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.Current())
}

func TestNew_AssignsSessionID(t *testing.T) {
	repo := newTestRepo(t)
	a := New(repo)
	b := New(repo)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}
