package nav

// ViewKey identifies a destination view. The set is closed: the menu is
// statically defined and never grows at runtime.
type ViewKey int

const (
	KeyHome ViewKey = iota // menu baseline, maps to no form
	KeyUpload
	KeyDownload
	KeyMerge
	KeySplit
)

func (k ViewKey) String() string {
	switch k {
	case KeyHome:
		return "home"
	case KeyUpload:
		return "upload"
	case KeyDownload:
		return "download"
	case KeyMerge:
		return "merge"
	case KeySplit:
		return "split"
	default:
		return "unknown"
	}
}

// ViewDescriptor is one entry of the card menu. Descriptors are built once at
// startup and never mutated.
type ViewDescriptor struct {
	Key         ViewKey
	Label       string
	Description string
}

// Registry holds the fixed, ordered descriptor collection and resolves keys
// against it.
type Registry struct {
	ordered []ViewDescriptor
	byKey   map[ViewKey]ViewDescriptor
}

// NewRegistry builds a registry from the given descriptors, preserving order.
func NewRegistry(descriptors []ViewDescriptor) *Registry {
	r := &Registry{
		ordered: append([]ViewDescriptor(nil), descriptors...),
		byKey:   make(map[ViewKey]ViewDescriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		r.byKey[d.Key] = d
	}
	return r
}

// DefaultRegistry returns the built-in operation cards.
func DefaultRegistry() *Registry {
	return NewRegistry([]ViewDescriptor{
		{Key: KeyUpload, Label: "Enviar PDF", Description: "Envia um PDF para o servidor e devolve um UUID"},
		{Key: KeyDownload, Label: "Baixar PDF", Description: "Baixa um PDF salvo a partir do seu UUID"},
		{Key: KeyMerge, Label: "Juntar PDFs", Description: "Concatena dois PDFs em um único arquivo"},
		{Key: KeySplit, Label: "Dividir PDF", Description: "Extrai um intervalo de páginas de um PDF"},
	})
}

// Resolve looks a key up in the registry. HOME is not a card, so resolving it
// reports false just like an unknown key.
func (r *Registry) Resolve(k ViewKey) (ViewDescriptor, bool) {
	d, ok := r.byKey[k]
	return d, ok
}

// Descriptors returns the menu entries in display order.
func (r *Registry) Descriptors() []ViewDescriptor {
	return r.ordered
}
