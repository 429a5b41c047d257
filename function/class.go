/*
File    : go-lox/function/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"fmt"

	"github.com/akashmaji946/go-lox/objects"
)

// Class represents a class value: a name, a method table, and an optional
// superclass. The table holds regular methods, getters, and `init`; all of
// them are Function values distinguished by their flags.
type Class struct {
	Name    string
	Methods map[string]*Function
	Super   *Class
}

// NewClass creates a class value.
func NewClass(name string, methods map[string]*Function, super *Class) *Class {
	return &Class{
		Name:    name,
		Methods: methods,
		Super:   super,
	}
}

// GetType returns the type identifier for this Class object.
func (c *Class) GetType() objects.GoLoxType {
	return objects.ClassType
}

// FindMethod walks the superclass chain in order and returns the first
// method with the given name, or nil when no class in the chain defines it.
func (c *Class) FindMethod(name string) *Function {
	for class := c; class != nil; class = class.Super {
		if method, ok := class.Methods[name]; ok {
			return method
		}
	}
	return nil
}

// Arity returns the number of arguments the class's constructor expects:
// the arity of `init` when defined, zero otherwise.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// ToString renders the display form: "<class name>".
func (c *Class) ToString() string {
	return fmt.Sprintf("<class %s>", c.Name)
}

// ToObject renders the inspection form.
func (c *Class) ToObject() string {
	return c.ToString()
}
