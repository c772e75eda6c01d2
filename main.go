package main

import "github.com/ibdesignproject/FuelUpFinal/cmd/fuelup"

func main() {
	fuelup.Execute()
}
