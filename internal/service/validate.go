package service

import "regexp"

// emailRegex matches the standard "x@y.z" shape; full RFC validation is not
// the goal, rejecting obviously malformed addresses before any write is.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool { return emailRegex.MatchString(email) }
