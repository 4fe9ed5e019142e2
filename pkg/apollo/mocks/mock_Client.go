// Package mocks provides test doubles for the apollo client.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	apollo "github.com/sells-group/prospect-cli/pkg/apollo"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// MatchByLinkedIn provides a mock function with given fields: ctx, linkedinURL, revealPhone
func (_m *MockClient) MatchByLinkedIn(ctx context.Context, linkedinURL string, revealPhone bool) (*apollo.MatchResult, error) {
	ret := _m.Called(ctx, linkedinURL, revealPhone)

	if len(ret) == 0 {
		panic("no return value specified for MatchByLinkedIn")
	}

	var r0 *apollo.MatchResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, bool) (*apollo.MatchResult, error)); ok {
		return rf(ctx, linkedinURL, revealPhone)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, bool) *apollo.MatchResult); ok {
		r0 = rf(ctx, linkedinURL, revealPhone)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*apollo.MatchResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, bool) error); ok {
		r1 = rf(ctx, linkedinURL, revealPhone)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
