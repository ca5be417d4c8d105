package main

import "strconv"

// actionValue is a pflag.Value writing the selected action name into dst.
// Several flags share one dst so the last one given wins. With fixed set the
// flag behaves like a switch that selects fixed.
type actionValue struct {
	dst   *string
	fixed string
}

func (a *actionValue) Set(s string) error {
	if a.fixed == "" {
		*a.dst = s
		return nil
	}
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*a.dst = a.fixed
	}
	return nil
}

func (a *actionValue) String() string {
	if a.dst == nil {
		return ""
	}
	if a.fixed != "" {
		return strconv.FormatBool(*a.dst == a.fixed)
	}
	return *a.dst
}

func (a *actionValue) Type() string {
	if a.fixed != "" {
		return "bool"
	}
	return "string"
}
