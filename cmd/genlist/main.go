// README: Demo CLI; generates a packing list for a sample trip and prints it.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"wut2pack/internal/modules/packing"
)

func main() {
	origin := flag.String("origin", "Oslo, Norway", "trip origin as City, Country")
	destination := flag.String("destination", "Lisbon, Portugal", "trip destination as City, Country")
	start := flag.String("start", "", "start date (YYYY-MM-DD, default today)")
	days := flag.Int("days", 7, "trip length in days")
	tempMin := flag.Float64("temp-min", 15, "expected minimum temperature in °C")
	tempMax := flag.Float64("temp-max", 25, "expected maximum temperature in °C")
	activities := flag.String("activities", "", "comma-separated activities (e.g. Hiking,Running)")
	swimming := flag.Bool("swimming", false, "plan to swim")
	flag.Parse()

	startDate := time.Now()
	if *start != "" {
		d, err := time.Parse("2006-01-02", *start)
		if err != nil {
			log.Fatalf("invalid -start: %v", err)
		}
		startDate = d
	}
	if *days < 0 {
		log.Fatal("-days must be non-negative")
	}

	answers := packing.Answers{
		Temperature: packing.TemperatureRange{Min: *tempMin, Max: *tempMax},
		Swimming:    *swimming,
	}
	if *activities != "" {
		answers.Activities = strings.Split(*activities, ",")
	}

	list := packing.Generate(answers, *days, *origin, *destination)

	fmt.Printf("Packing list for %s → %s (%d days, %s)\n\n",
		*origin, *destination, *days, startDate.Format("2006-01-02"))
	for _, cat := range packing.Categories {
		items := list.Categories[cat]
		if len(items) == 0 {
			continue
		}
		fmt.Printf("%s:\n", cat)
		for _, it := range items {
			marker := " "
			if it.Essential {
				marker = "*"
			}
			fmt.Printf("  %s %s x%d\n", marker, it.Name, it.Quantity)
		}
		fmt.Println()
	}
	fmt.Println("* essential")
}
