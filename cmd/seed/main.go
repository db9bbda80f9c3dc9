// Seeder de datos demo: purga lo existente vía API y carga mascotas
// con sus registros médicos. Correr con el server levantado:
//
//	go run ./cmd/seed -base http://localhost:8080
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"pet-health-records/internal/platform/httpclient"
)

type petInput struct {
	Name       string `json:"name"`
	AnimalType string `json:"animalType"`
	OwnerName  string `json:"ownerName"`
	DOB        string `json:"dob"`
}

type petOutput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type recordInput struct {
	RecordType string         `json:"recordType"`
	Data       map[string]any `json:"data"`
}

type petEntry struct {
	pet     petInput
	records []recordInput
}

func vaccine(name, date, administeredBy, notes string) recordInput {
	data := map[string]any{"name": name, "date": date}
	if administeredBy != "" {
		data["administeredBy"] = administeredBy
	}
	if notes != "" {
		data["notes"] = notes
	}
	return recordInput{RecordType: "VACCINE", Data: data}
}

func allergy(name string, reactions []string, severity, notes string) recordInput {
	data := map[string]any{"name": name, "reactions": reactions, "severity": severity}
	if notes != "" {
		data["notes"] = notes
	}
	return recordInput{RecordType: "ALLERGY", Data: data}
}

// Las severidades intermedias del dataset original se bajan a MILD:
// el modelo solo distingue MILD y SEVERE.
var seedData = []petEntry{
	{
		pet: petInput{Name: "Buddy", AnimalType: "Dog", OwnerName: "Jane Smith", DOB: "2019-03-10"},
		records: []recordInput{
			vaccine("Rabies", "2024-01-15", "Dr. Lee", "Annual booster"),
			vaccine("DHPP", "2023-08-20", "Dr. Lee", ""),
			allergy("Chicken", []string{"Itching", "Upset stomach"}, "MILD", "Avoid chicken-based food"),
		},
	},
	{
		pet: petInput{Name: "Whiskers", AnimalType: "Cat", OwnerName: "Bob Chen", DOB: "2020-07-22"},
		records: []recordInput{
			vaccine("FVRCP", "2024-06-01", "Dr. Park", ""),
			vaccine("Rabies", "2024-05-10", "Dr. Park", ""),
			allergy("Pollen", []string{"Sneezing"}, "MILD", ""),
		},
	},
	{
		pet: petInput{Name: "Nibbles", AnimalType: "Rabbit", OwnerName: "Alex Rivera", DOB: "2022-01-05"},
		records: []recordInput{
			vaccine("RHDV", "2024-09-12", "Dr. Lee", "Rabbit hemorrhagic disease"),
			allergy("Alfalfa", []string{"Digestive upset"}, "MILD", "Limit alfalfa hay"),
		},
	},
	{
		pet: petInput{Name: "Sunny", AnimalType: "Bird", OwnerName: "Jordan Taylor", DOB: "2021-11-18"},
		records: []recordInput{
			allergy("Dust", []string{"Respiratory"}, "MILD", "Keep cage clean"),
		},
	},
	{
		pet: petInput{Name: "Shadow", AnimalType: "Dog", OwnerName: "Sam Wilson", DOB: "2018-05-30"},
		records: []recordInput{
			vaccine("Rabies", "2023-12-01", "Dr. Park", "Due for renewal"),
			vaccine("DHPP", "2023-12-01", "Dr. Park", ""),
			allergy("Bee sting", []string{"Swelling", "Hives"}, "SEVERE", "Epi on file"),
		},
	},
	{
		pet: petInput{Name: "Mochi", AnimalType: "Cat", OwnerName: "Casey Kim", DOB: "2023-02-14"},
		records: []recordInput{
			vaccine("FVRCP", "2024-03-01", "Dr. Lee", "Kitten series"),
			vaccine("Rabies", "2024-03-15", "Dr. Lee", ""),
		},
	},
	{
		pet: petInput{Name: "Goldie", AnimalType: "Fish", OwnerName: "Riley Green", DOB: "2022-06-01"},
	},
	{
		pet: petInput{Name: "Spike", AnimalType: "Lizard", OwnerName: "Morgan Davis", DOB: "2020-09-09"},
		records: []recordInput{
			allergy("Mite treatment", []string{"Skin irritation"}, "MILD", ""),
		},
	},
	{
		pet: petInput{Name: "Oreo", AnimalType: "Guinea Pig", OwnerName: "Taylor Brown", DOB: "2023-04-20"},
		records: []recordInput{
			vaccine("Vitamin C supplement", "2024-10-01", "Owner", "Routine"),
		},
	},
	{
		pet: petInput{Name: "Luna", AnimalType: "Dog", OwnerName: "Jamie Fox", DOB: "2021-08-12"},
		records: []recordInput{
			vaccine("Rabies", "2024-08-01", "Dr. Park", ""),
			allergy("Grass", []string{"Paw licking"}, "MILD", ""),
		},
	},
}

func main() {
	base := flag.String("base", "http://localhost:8080", "URL base de la API")
	keep := flag.Bool("keep", false, "no purgar las mascotas existentes")
	flag.Parse()

	client, err := httpclient.NewWithBaseURL(*base, 30*time.Second)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if !*keep {
		if err := purge(ctx, client); err != nil {
			log.Fatalf("seed: purge: %v", err)
		}
	}

	for _, entry := range seedData {
		var created petOutput
		if err := client.DoJSON(ctx, http.MethodPost, "/pets", entry.pet, &created); err != nil {
			log.Fatalf("seed: create pet %s: %v", entry.pet.Name, err)
		}
		for _, rec := range entry.records {
			path := fmt.Sprintf("/pets/%s/records", created.ID)
			if err := client.DoJSON(ctx, http.MethodPost, path, rec, nil); err != nil {
				log.Fatalf("seed: create record for %s: %v", entry.pet.Name, err)
			}
		}
		log.Printf("  %s (%s) + %d record(s)", created.Name, entry.pet.AnimalType, len(entry.records))
	}

	log.Println("done")
}

// purge borra todas las mascotas; los registros caen por cascade.
func purge(ctx context.Context, client *httpclient.Client) error {
	var existing []petOutput
	if err := client.DoJSON(ctx, http.MethodGet, "/pets", nil, &existing); err != nil {
		return err
	}
	for _, p := range existing {
		if err := client.DoJSON(ctx, http.MethodDelete, "/pets/"+p.ID, nil, nil); err != nil {
			return fmt.Errorf("delete pet %s: %w", p.ID, err)
		}
	}
	if len(existing) > 0 {
		log.Printf("purged %d pet(s)", len(existing))
	}
	return nil
}
