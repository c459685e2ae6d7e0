// Package i18n resolves display labels from nested translation catalogs.
//
// Catalogs are maps keyed by language code whose values are nested maps of
// strings; keys are addressed with dot notation ("order_status.pending").
// A Translator loads a catalog once through a TranslationAdapter and is
// read-only afterwards, so it is safe for concurrent use.
//
//	adapter := i18n.NewFSAdapter(labelsFS, "labels.yaml")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("es"))
//	if err != nil {
//	    return err
//	}
//	lang := tr.Match("es-CO")                     // "es"
//	label := tr.Td(lang, "priority.high", "high")  // "Alta"
//
// Placeholders use the "%{name}" form and are filled from key/value pairs
// passed to T and Td.
package i18n
