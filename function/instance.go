/*
File    : go-lox/function/instance.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"fmt"

	"github.com/akashmaji946/go-lox/objects"
)

// Instance represents an object constructed from a class. Fields are
// created dynamically on first assignment; property reads fall back to the
// class's method table when no field matches. The field map is owned by
// the instance and shared by every value referencing it, so mutations made
// through one bound method are visible through all of them.
type Instance struct {
	Class  *Class
	Fields map[string]objects.GoLoxObject
}

// NewInstance creates an instance of a class with no fields.
func NewInstance(class *Class) *Instance {
	return &Instance{
		Class:  class,
		Fields: make(map[string]objects.GoLoxObject),
	}
}

// GetType returns the type identifier for this Instance object.
func (inst *Instance) GetType() objects.GoLoxType {
	return objects.InstanceType
}

// GetField returns the instance's own field with the given name, if set.
func (inst *Instance) GetField(name string) (objects.GoLoxObject, bool) {
	obj, ok := inst.Fields[name]
	return obj, ok
}

// SetField creates or overwrites an instance field.
func (inst *Instance) SetField(name string, value objects.GoLoxObject) {
	inst.Fields[name] = value
}

// ToString renders the display form: "<object class_name>".
func (inst *Instance) ToString() string {
	return fmt.Sprintf("<object %s>", inst.Class.Name)
}

// ToObject renders the inspection form.
func (inst *Instance) ToObject() string {
	return inst.ToString()
}
