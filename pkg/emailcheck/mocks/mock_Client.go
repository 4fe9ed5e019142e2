// Package mocks provides test doubles for the emailcheck client.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	emailcheck "github.com/sells-group/prospect-cli/pkg/emailcheck"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// CheckEmail provides a mock function with given fields: ctx, email
func (_m *MockClient) CheckEmail(ctx context.Context, email string) (*emailcheck.CheckResult, error) {
	ret := _m.Called(ctx, email)

	if len(ret) == 0 {
		panic("no return value specified for CheckEmail")
	}

	var r0 *emailcheck.CheckResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*emailcheck.CheckResult, error)); ok {
		return rf(ctx, email)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *emailcheck.CheckResult); ok {
		r0 = rf(ctx, email)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*emailcheck.CheckResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, email)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
