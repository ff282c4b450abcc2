package buffer

// Apply applies e through Replace and returns the resulting document.
func (b *Buffer) Apply(e Edit) Document {
	return b.Replace(e.Range, e.Text, e.Caret)
}

// ApplyAll applies edits in order as separate history steps. Each edit's
// range is interpreted against the document produced by the previous one.
func (b *Buffer) ApplyAll(edits ...Edit) Document {
	for _, e := range edits {
		b.Apply(e)
	}
	return b.Document()
}
