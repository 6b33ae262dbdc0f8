package crypto

// AlgorithmAES256GCM identifies AES with a 256-bit key in Galois/Counter Mode
const AlgorithmAES256GCM = "AES-256-GCM"

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// GCMNonceSize is the size in bytes of the random nonce drawn for every seal
const GCMNonceSize = 12

// GCMTagSize is the size in bytes of the authentication tag produced by every seal
const GCMTagSize = 16
