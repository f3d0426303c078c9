package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/openyieldtables/go-yieldtables/pkg/dataset"
	"github.com/openyieldtables/go-yieldtables/pkg/model"
	"github.com/openyieldtables/go-yieldtables/pkg/render"
	"github.com/openyieldtables/go-yieldtables/pkg/renderers/htmlview"
	"github.com/openyieldtables/go-yieldtables/pkg/renderers/jsonview"
)

func main() {
	id := flag.Int("id", 0, "yield table ID to render (0 prompts interactively)")
	rendererName := flag.String("renderer", "html", "renderer to use (html or json)")
	output := flag.String("output", "", "output file (stdout if empty)")
	dataDir := flag.String("data", "", "dataset directory (empty uses the embedded dataset)")
	flag.Parse()

	ctx := context.Background()

	var storeOptions []dataset.Option
	if *dataDir != "" {
		storeOptions = append(storeOptions, dataset.WithBaseDir(*dataDir))
	}
	store, err := dataset.New(storeOptions...)
	if err != nil {
		log.Fatalf("dataset: %v", err)
	}

	registry := render.NewRegistry()
	html, err := htmlview.New()
	if err != nil {
		log.Fatalf("html renderer: %v", err)
	}
	registry.MustRegister(html)
	registry.MustRegister(jsonview.New())

	renderer, err := registry.Get(*rendererName)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}

	meta, err := pickRecord(store, *id)
	if err != nil {
		log.Fatalf("select record: %v", err)
	}

	payload, err := renderer.Render(ctx, meta, render.RenderOptions{})
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Record written to %s\n", *output)
		return
	}
	fmt.Println(string(payload))
}

// pickRecord resolves the record from the -id flag, or prompts with a list
// of table titles when no id was given.
func pickRecord(store *dataset.Store, id int) (model.YieldTableMeta, error) {
	if id != 0 {
		return store.Meta(id)
	}

	metas := store.Metas()
	if len(metas) == 0 {
		return model.YieldTableMeta{}, fmt.Errorf("dataset holds no yield tables")
	}

	options := make([]string, len(metas))
	for i, meta := range metas {
		options[i] = fmt.Sprintf("%d: %s", meta.ID, meta.Title)
	}

	var choice int
	prompt := &survey.Select{
		Message: "Pick a yield table:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return model.YieldTableMeta{}, err
	}
	return metas[choice], nil
}
