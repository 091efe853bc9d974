// Package signal implements the signal language: a k-ary Huffman word
// codec. A weighted vocabulary is turned into a prefix-free code over a
// small alphabet (three symbols by default), which then maps free text
// to a separator-free symbol stream and back.
//
//	codec, err := signal.Build(vocab)
//	s := codec.Encode("we have been waiting")
//	codec.Decode(s) // "we have been waiting"
package signal

// Config holds configuration for Build.
type Config struct {
	Alphabet Alphabet // Symbols codewords are written in (nil = DefaultAlphabet)
	Logger   Logger   // Receives build summaries and unresolved decode tails (nil = discard)
}

// Option is a functional option for configuring Build.
type Option func(*Config)

// WithAlphabet sets the code alphabet. Its length is the tree arity.
func WithAlphabet(a Alphabet) Option {
	return func(c *Config) {
		c.Alphabet = a
	}
}

// WithLogger routes codec diagnostics to l.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func newConfig(opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Alphabet == nil {
		cfg.Alphabet = DefaultAlphabet
	}
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	return cfg
}

// Codec is an immutable codebook together with its inverse. It is safe
// for concurrent use; a different vocabulary needs a new Codec.
type Codec struct {
	alphabet    Alphabet
	codebook    Codebook
	reverse     map[string]string // codeword -> token
	escapeWidth int
	padding     int
	logger      Logger
}

// Build constructs a Codec from v. It fails with an error wrapping
// ErrConfiguration if v is empty, has a non-positive weight, lists a
// token twice with different weights, or if the alphabet is invalid.
func Build(v Vocabulary, opts ...Option) (*Codec, error) {
	cfg := newConfig(opts)
	if err := cfg.Alphabet.validate(); err != nil {
		return nil, err
	}
	entries, err := v.normalize()
	if err != nil {
		return nil, err
	}

	alphabet := append(Alphabet(nil), cfg.Alphabet...)
	root, pad := buildTree(entries, alphabet.K())
	codebook, reverse := compile(root, alphabet)

	c := &Codec{
		alphabet:    alphabet,
		codebook:    codebook,
		reverse:     reverse,
		escapeWidth: escapeWidth(alphabet.K()),
		padding:     pad,
		logger:      cfg.Logger,
	}
	c.logger.Printf("signal: built codebook: %d tokens, %d padding leaves, alphabet %q, escape width %d",
		len(codebook), pad, alphabet.String(), c.escapeWidth)
	return c, nil
}

// MustBuild is like Build but panics on error.
func MustBuild(v Vocabulary, opts ...Option) *Codec {
	c, err := Build(v, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the codeword for token.
func (c *Codec) Lookup(token string) (string, bool) {
	code, ok := c.codebook[token]
	return code, ok
}

// Token returns the token whose codeword is code.
func (c *Codec) Token(code string) (string, bool) {
	token, ok := c.reverse[code]
	return token, ok
}

// Codebook returns a copy of the token to codeword mapping.
func (c *Codec) Codebook() Codebook { return c.codebook.clone() }

// Alphabet returns a copy of the code alphabet.
func (c *Codec) Alphabet() Alphabet { return append(Alphabet(nil), c.alphabet...) }

// EscapeWidth is the number of symbols in one escape block.
func (c *Codec) EscapeWidth() int { return c.escapeWidth }

// Padding is the number of weight-0 leaves added to complete the tree.
func (c *Codec) Padding() int { return c.padding }

// Len is the number of tokens in the codebook.
func (c *Codec) Len() int { return len(c.codebook) }
