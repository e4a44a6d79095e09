// Package validator provides two complementary ways of checking input: a
// fluent chain that asserts properties of one or more values, and a
// declarative Rule model that aggregates field level failures. Both share the
// ValidationError and ValidationErrors types and a table of named input
// patterns (account numbers, emails, phone numbers, IP addresses, URLs, ...).
//
// # Architecture
//
// The pattern table is evaluated with github.com/dlclark/regexp2, a
// backtracking engine that understands lookaheads, backreferences and the
// \A and \z anchors used by several entries. Every expression is compiled once
// at package initialisation and carries a match timeout.
//
// Core building blocks:
//   - Chain             – fluent, deferred evaluation of IsNotNull, IsIn, Matches and Obeys
//   - Rule              – lightweight struct containing Check func and error meta
//   - ValidationError   – describes a single failure
//   - ValidationErrors  – slice type that implements the error interface
//   - PatternType       – names an entry of the pattern table used by ValidateInput
//
// # Usage
//
//	err := validator.That(login, email).
//	    IsNotNull().
//	    Matches(`^[a-z0-9@._-]+$`).
//	    That(role).
//	    IsIn([]string{"admin", "user"}).
//	    ThrowOnError()
//
//	ok := validator.ValidateInput("555-123-4567", validator.Phone, false)
//
//	err = validator.Apply(
//	    validator.RequiredString("name", name),
//	    validator.MatchesPatternRule("zip", zip, validator.ZipCode, true),
//	)
//
// # Error Handling
//
// A chain is fail-fast by default and stops at the first failure. ReportAll
// collects every failure. ThrowOnError returns nil, a single ValidationError
// or a ValidationErrors aggregate; all of them match ErrValidationFailed with
// errors.Is. Using a chain after ThrowOnError produces ErrAlreadyValidated.
package validator
