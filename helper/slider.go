package helper

import (
	"errors"
	"log"
	"sync"

	"nizami_cinema/constants"

	"github.com/go-co-op/gocron/v2"
)

// Global promotional slider state. One scheduler for the whole process,
// every tick advances the active index by one, wrapping.
var (
	sliderMu    sync.Mutex
	sliderIndex int
	sliderLen   int

	sliderScheduler gocron.Scheduler
)

var ErrSlideOutOfRange = errors.New("slide index out of range")

func SetSliderLength(n int) {
	sliderMu.Lock()
	defer sliderMu.Unlock()
	sliderLen = n
	if sliderLen == 0 {
		sliderIndex = 0
	} else if sliderIndex >= sliderLen {
		sliderIndex = sliderIndex % sliderLen
	}
}

func SliderIndex() int {
	sliderMu.Lock()
	defer sliderMu.Unlock()
	return sliderIndex
}

// AdvanceSlider moves the active slide forward by one, modulo length
func AdvanceSlider() {
	sliderMu.Lock()
	defer sliderMu.Unlock()
	if sliderLen == 0 {
		return
	}
	sliderIndex = (sliderIndex + 1) % sliderLen
}

// SetSliderIndex activates a slide directly (a click on it)
func SetSliderIndex(i int) error {
	sliderMu.Lock()
	defer sliderMu.Unlock()
	if i < 0 || i >= sliderLen {
		return ErrSlideOutOfRange
	}
	sliderIndex = i
	return nil
}

func StartSliderScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	sliderScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(constants.SliderInterval),
		gocron.NewTask(AdvanceSlider),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Slider scheduler started (4s interval)")
}

func StopSliderScheduler() {
	if sliderScheduler != nil {
		if err := sliderScheduler.Shutdown(); err != nil {
			log.Printf("slider scheduler shutdown: %v", err)
		}
	}
}
