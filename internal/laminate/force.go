package laminate

import "fmt"

// ForceOrthotropic removes the shear-extension and shear-bending coupling
// terms A16, A26, B16, B26, D16, D26. The laminate is left untouched when
// its offset is not zero.
func (l *Laminate) ForceOrthotropic() error {
	if l.Offset != 0 {
		return fmt.Errorf("cannot force orthotropic, offset=%g: %w", l.Offset, ErrOffset)
	}
	l.A16, l.A26 = 0, 0
	l.B16, l.B26 = 0, 0
	l.D16, l.D26 = 0, 0
	return nil
}

// ForceSymmetric removes the extension-bending coupling matrix B. The
// laminate is left untouched when its offset is not zero.
func (l *Laminate) ForceSymmetric() error {
	if l.Offset != 0 {
		return fmt.Errorf("cannot force symmetric, offset=%g: %w", l.Offset, ErrOffset)
	}
	l.B11, l.B12, l.B16, l.B22, l.B26, l.B66 = 0, 0, 0, 0, 0, 0
	return nil
}
