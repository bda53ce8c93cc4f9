package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type Account struct {
	Plan   string
	Active bool
}

const (
	Free       = "free"
	Pro        = "pro"
	Enterprise = "enterprise"
)

func TestSpecification(t *testing.T) {
	isFree := New[Account](func(a Account) bool {
		return a.Plan == Free
	})
	isPro := New[Account](func(a Account) bool {
		return a.Plan == Pro
	})
	isActive := New[Account](func(a Account) bool {
		return a.Active
	})

	a := Account{Plan: Pro, Active: true}
	assert.False(t, isFree.IsSatisfiedBy(a))
	assert.True(t, isPro.IsSatisfiedBy(a))
	assert.True(t, isActive.IsSatisfiedBy(a))

	assert.True(t, And(isPro, isActive).IsSatisfiedBy(a))
	assert.False(t, And(isFree, isActive).IsSatisfiedBy(a))
	assert.False(t, And(isPro, isFree).IsSatisfiedBy(a))
}

func TestAndNests(t *testing.T) {
	isPro := New[Account](func(a Account) bool { return a.Plan == Pro })
	isActive := New[Account](func(a Account) bool { return a.Active })
	isNamedPlan := New[Account](func(a Account) bool { return a.Plan != "" })

	a := Account{Plan: Pro, Active: true}
	assert.True(t, And(And(isPro, isActive), isNamedPlan).IsSatisfiedBy(a))
	assert.True(t, And(isPro, And(isActive, isNamedPlan)).IsSatisfiedBy(a))

	b := Account{Plan: Pro, Active: false}
	assert.False(t, And(isPro, And(isActive, isNamedPlan)).IsSatisfiedBy(b))
}

func TestConjunction(t *testing.T) {
	isPro := New[Account](func(a Account) bool { return a.Plan == Pro })
	isActive := New[Account](func(a Account) bool { return a.Active })
	never := New[Account](func(a Account) bool { return false })

	a := Account{Plan: Pro, Active: true}
	assert.True(t, Conjunction[Account]().IsSatisfiedBy(a))
	assert.True(t, Conjunction(isPro).IsSatisfiedBy(a))
	assert.True(t, Conjunction(isPro, isActive).IsSatisfiedBy(a))
	assert.False(t, Conjunction(isPro, isActive, never).IsSatisfiedBy(a))
}
