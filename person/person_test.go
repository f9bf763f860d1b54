package person_test

import (
	"testing"

	"github.com/ldbc/knowsgen/person"
	"github.com/stretchr/testify/require"
)

func TestCreate_RejectsSelfPair(t *testing.T) {
	persons := []person.Person{
		person.NewSimplePerson(0, 1, 5),
	}
	ok := person.Create(nil, persons, 0, 0, nil)
	require.False(t, ok)
}

func TestCreate_RejectsOverCapacity(t *testing.T) {
	a := person.NewSimplePerson(0, 1, 1)
	b := person.NewSimplePerson(1, 1, 1)
	c := person.NewSimplePerson(2, 1, 1)
	persons := []person.Person{a, b, c}

	require.True(t, person.Create(nil, persons, 0, 1, nil))
	require.False(t, person.Create(nil, persons, 0, 2, nil))
}

func TestCreate_RejectsDuplicate(t *testing.T) {
	a := person.NewSimplePerson(0, 1, 5)
	b := person.NewSimplePerson(1, 1, 5)
	persons := []person.Person{a, b}

	require.True(t, person.Create(nil, persons, 0, 1, nil))
	require.False(t, person.Create(nil, persons, 0, 1, nil))
	require.Equal(t, 1, a.Knows().Len())
}

func TestCreate_SymmetricUpdate(t *testing.T) {
	a := person.NewSimplePerson(0, 1, 5)
	b := person.NewSimplePerson(1, 1, 5)
	persons := []person.Person{a, b}

	require.True(t, person.Create(nil, persons, 0, 1, nil))
	require.True(t, a.Knows().Has(1))
	require.True(t, b.Knows().Has(0))
}

func TestKnowsSet_HasDoesNotInsert(t *testing.T) {
	k := person.NewKnowsSet()
	for i := 0; i < 5; i++ {
		k.Has(i) // no-op reads before any writes
	}
	require.Equal(t, 0, k.Len())
}
