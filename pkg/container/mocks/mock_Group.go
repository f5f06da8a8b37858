// Package mocks provides testify mocks of the container interfaces. They
// follow mockery's expecter layout so tests can be written as
// m.EXPECT().Attr("name").Return(v, true).
package mocks

import (
	container "github.com/cmlh5/cmlh5-go/pkg/container"
	mock "github.com/stretchr/testify/mock"
)

// MockGroup is a mock of container.Group.
type MockGroup struct {
	mock.Mock
}

type MockGroup_Expecter struct {
	mock *mock.Mock
}

func (_m *MockGroup) EXPECT() *MockGroup_Expecter {
	return &MockGroup_Expecter{mock: &_m.Mock}
}

// Attr provides a mock function with given fields: name
func (_m *MockGroup) Attr(name string) (interface{}, bool) {
	ret := _m.Called(name)

	if len(ret) == 0 {
		panic("no return value specified for Attr")
	}

	var r0 interface{}
	var r1 bool
	if rf, ok := ret.Get(0).(func(string) (interface{}, bool)); ok {
		return rf(name)
	}
	if rf, ok := ret.Get(0).(func(string) interface{}); ok {
		r0 = rf(name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(interface{})
		}
	}

	if rf, ok := ret.Get(1).(func(string) bool); ok {
		r1 = rf(name)
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}

// MockGroup_Attr_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Attr'
type MockGroup_Attr_Call struct {
	*mock.Call
}

// Attr is a helper method to define mock.On call
//   - name string
func (_e *MockGroup_Expecter) Attr(name interface{}) *MockGroup_Attr_Call {
	return &MockGroup_Attr_Call{Call: _e.mock.On("Attr", name)}
}

func (_c *MockGroup_Attr_Call) Run(run func(name string)) *MockGroup_Attr_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockGroup_Attr_Call) Return(_a0 interface{}, _a1 bool) *MockGroup_Attr_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGroup_Attr_Call) RunAndReturn(run func(string) (interface{}, bool)) *MockGroup_Attr_Call {
	_c.Call.Return(run)
	return _c
}

// AttrNames provides a mock function with no fields
func (_m *MockGroup) AttrNames() []string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for AttrNames")
	}

	var r0 []string
	if rf, ok := ret.Get(0).(func() []string); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	return r0
}

// MockGroup_AttrNames_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AttrNames'
type MockGroup_AttrNames_Call struct {
	*mock.Call
}

// AttrNames is a helper method to define mock.On call
func (_e *MockGroup_Expecter) AttrNames() *MockGroup_AttrNames_Call {
	return &MockGroup_AttrNames_Call{Call: _e.mock.On("AttrNames")}
}

func (_c *MockGroup_AttrNames_Call) Run(run func()) *MockGroup_AttrNames_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockGroup_AttrNames_Call) Return(_a0 []string) *MockGroup_AttrNames_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGroup_AttrNames_Call) RunAndReturn(run func() []string) *MockGroup_AttrNames_Call {
	_c.Call.Return(run)
	return _c
}

// Groups provides a mock function with no fields
func (_m *MockGroup) Groups() []container.Group {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Groups")
	}

	var r0 []container.Group
	if rf, ok := ret.Get(0).(func() []container.Group); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]container.Group)
		}
	}

	return r0
}

// MockGroup_Groups_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Groups'
type MockGroup_Groups_Call struct {
	*mock.Call
}

// Groups is a helper method to define mock.On call
func (_e *MockGroup_Expecter) Groups() *MockGroup_Groups_Call {
	return &MockGroup_Groups_Call{Call: _e.mock.On("Groups")}
}

func (_c *MockGroup_Groups_Call) Run(run func()) *MockGroup_Groups_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockGroup_Groups_Call) Return(_a0 []container.Group) *MockGroup_Groups_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGroup_Groups_Call) RunAndReturn(run func() []container.Group) *MockGroup_Groups_Call {
	_c.Call.Return(run)
	return _c
}

// Name provides a mock function with no fields
func (_m *MockGroup) Name() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Name")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// MockGroup_Name_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Name'
type MockGroup_Name_Call struct {
	*mock.Call
}

// Name is a helper method to define mock.On call
func (_e *MockGroup_Expecter) Name() *MockGroup_Name_Call {
	return &MockGroup_Name_Call{Call: _e.mock.On("Name")}
}

func (_c *MockGroup_Name_Call) Run(run func()) *MockGroup_Name_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockGroup_Name_Call) Return(_a0 string) *MockGroup_Name_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGroup_Name_Call) RunAndReturn(run func() string) *MockGroup_Name_Call {
	_c.Call.Return(run)
	return _c
}

// Path provides a mock function with no fields
func (_m *MockGroup) Path() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Path")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// MockGroup_Path_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Path'
type MockGroup_Path_Call struct {
	*mock.Call
}

// Path is a helper method to define mock.On call
func (_e *MockGroup_Expecter) Path() *MockGroup_Path_Call {
	return &MockGroup_Path_Call{Call: _e.mock.On("Path")}
}

func (_c *MockGroup_Path_Call) Run(run func()) *MockGroup_Path_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockGroup_Path_Call) Return(_a0 string) *MockGroup_Path_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGroup_Path_Call) RunAndReturn(run func() string) *MockGroup_Path_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockGroup creates a new instance of MockGroup. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGroup(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGroup {
	mock := &MockGroup{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
