package service_test

import (
	"math"
	"testing"

	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

func TestConvertUnitSameDimension(t *testing.T) {
	t.Parallel()
	out, err := service.ConvertUnit(150, "lb", "kg")
	if err != nil {
		t.Fatalf("convert mass units: %v", err)
	}
	if math.Abs(out-68.04) > 0.01 {
		t.Fatalf("expected ~68.04 kg, got %.4f", out)
	}
}

func TestConvertUnitCrossDimensionFails(t *testing.T) {
	t.Parallel()
	if _, err := service.ConvertUnit(1, "cup", "kg"); err == nil {
		t.Fatalf("expected cross-dimension error")
	}
	if _, err := service.ConvertUnit(1, "stone", "kg"); err == nil {
		t.Fatalf("expected unsupported unit error")
	}
}

func TestBodyAndWaterNormalization(t *testing.T) {
	t.Parallel()
	kg, err := service.WeightKG(150, "lbs")
	if err != nil || kg != 68 {
		t.Fatalf("expected 68 kg, got %v err=%v", kg, err)
	}
	cm, err := service.HeightCM(69, "in")
	if err != nil || cm != 175.3 {
		t.Fatalf("expected 175.3 cm, got %v err=%v", cm, err)
	}
	same, err := service.HeightCM(180, "")
	if err != nil || same != 180 {
		t.Fatalf("expected default unit cm, got %v err=%v", same, err)
	}
	ml, err := service.WaterML(2, "cup")
	if err != nil || ml != 473 {
		t.Fatalf("expected 473 ml, got %d err=%v", ml, err)
	}
	if _, err := service.WaterML(1, "kg"); err == nil {
		t.Fatalf("expected mass unit to be rejected for water")
	}
}
