package main

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	SetVersion(version, buildTime)
	Execute()
}
