package enums_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/enums"
)

type Status string

const (
	Active   Status = "Active"
	Inactive Status = "Inactive"
)

var statuses = enums.Must("Status",
	enums.Member[Status]{Value: Active, Name: "Active", Wire: "A", Description: "Currently Active"},
	enums.Member[Status]{Value: Inactive, Name: "Inactive"},
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name    string
		setName string
		members []enums.Member[int]
		err     error
	}{
		{"No-Set-Name", "", nil, enums.ErrBadDefinition},
		{"No-Member-Name", "Code", []enums.Member[int]{{Value: 1}}, enums.ErrBadDefinition},
		{"Duplicate-Name", "Code", []enums.Member[int]{{Value: 1, Name: "One"}, {Value: 2, Name: "One"}}, enums.ErrBadDefinition},
		{"Duplicate-Value", "Code", []enums.Member[int]{{Value: 1, Name: "One"}, {Value: 1, Name: "Uno"}}, enums.ErrBadDefinition},
		{"Zero-Members", "Code", nil, nil},
		{"Annotated", "Code", []enums.Member[int]{{Value: 1, Name: "One", Wire: "1", Description: "first"}}, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := enums.New(tc.setName, tc.members...)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Nil(t, s)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.setName, s.String())
		})
	}
}

func TestMust(t *testing.T) {
	require.Panics(t, func() { enums.Must[int]("") })
	require.NotPanics(t, func() { enums.Must("Code", enums.Member[int]{Value: 1, Name: "One"}) })
}

func TestSetName(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    Status
		expected string
	}{
		{"Annotated", Active, "Active"},
		{"Unannotated", Inactive, "Inactive"},
		{"Unknown", Status("Paused"), ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, statuses.Name(tc.input))
		})
	}
}

func TestSetWireConstant(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    Status
		expected string
	}{
		{"Annotated", Active, "A"},
		{"Fallback-To-Name", Inactive, "Inactive"},
		{"Unknown", Status("Paused"), ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, statuses.WireConstant(tc.input))
		})
	}
}

func TestSetDescription(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    Status
		expected string
	}{
		{"Annotated", Active, "Currently Active"},
		{"Fallback-To-Name", Inactive, "Inactive"},
		{"Unknown", Status("Paused"), ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, statuses.Description(tc.input))
		})
	}
}

func TestSetLookup(t *testing.T) {
	m, ok := statuses.Lookup(Active)
	require.True(t, ok)
	require.Equal(t, enums.Member[Status]{Value: Active, Name: "Active", Wire: "A", Description: "Currently Active"}, m)

	m, ok = statuses.Lookup(Status("Paused"))
	require.False(t, ok)
	require.Zero(t, m)
}

func TestSetValid(t *testing.T) {
	require.NoError(t, statuses.Valid(Active))
	require.NoError(t, statuses.Valid(Inactive))
	require.ErrorIs(t, statuses.Valid(Status("Paused")), enums.ErrNotValid)
}

func TestSetAccessors(t *testing.T) {
	require.Equal(t, []string{"Active", "Inactive"}, statuses.Names())
	require.Equal(t, []Status{Active, Inactive}, statuses.Values())

	members := statuses.Members()
	require.Len(t, members, 2)

	// Mutating the copy must not reach the Set.
	members[0].Wire = "Z"
	require.Equal(t, "A", statuses.WireConstant(Active))
}

func TestSetCheckUnique(t *testing.T) {
	for _, tc := range []struct {
		name    string
		members []enums.Member[int]
		err     error
	}{
		{"Clean", []enums.Member[int]{{Value: 1, Name: "One", Wire: "1"}, {Value: 2, Name: "Two", Wire: "2"}}, nil},
		{"Wire-Collision", []enums.Member[int]{{Value: 1, Name: "One", Wire: "x"}, {Value: 2, Name: "Two", Wire: "x"}}, enums.ErrBadDefinition},
		{"Wire-Collision-Folded", []enums.Member[int]{{Value: 1, Name: "One", Wire: "x"}, {Value: 2, Name: "Two", Wire: "X"}}, enums.ErrBadDefinition},
		{"Description-Collision", []enums.Member[int]{{Value: 1, Name: "One", Description: "same"}, {Value: 2, Name: "Two", Description: "same"}}, enums.ErrBadDefinition},
		{"Description-Case-Differs", []enums.Member[int]{{Value: 1, Name: "One", Description: "same"}, {Value: 2, Name: "Two", Description: "SAME"}}, nil},
		{"Unannotated", []enums.Member[int]{{Value: 1, Name: "One"}, {Value: 2, Name: "Two"}}, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := enums.New("Code", tc.members...)
			require.NoError(t, err)

			if tc.err != nil {
				require.ErrorIs(t, s.CheckUnique(), tc.err)
				return
			}

			require.NoError(t, s.CheckUnique())
		})
	}
}
