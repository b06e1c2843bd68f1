package config

var ParseLevel = parseLevel
