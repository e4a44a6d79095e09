package convert

import "errors"

var (
	ErrConversion      = errors.New("convert: conversion failed")
	ErrUnsupportedType = errors.New("convert: unsupported target type")
)
