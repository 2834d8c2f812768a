// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

// Canonical OpenGL 1.5 enum values (spec.md §6): the front-end accepts
// these exact 16-bit hex identifiers so a caller migrating numeric
// constants from a real GL binding needs no translation table. Phong
// is this implementation's own extension value for ShadeModel,
// occupying a slot the real API never defined.

// Primitive topologies.
const (
	glPoints        = 0x0000
	glLines         = 0x0001
	glLineLoop      = 0x0002
	glLineStrip     = 0x0003
	glTriangles     = 0x0004
	glTriangleStrip = 0x0005
	glTriangleFan   = 0x0006
	glQuads         = 0x0007
	glQuadStrip     = 0x0008
	glPolygon       = 0x0009
)

// Test functions (depth, alpha, stencil).
const (
	glNever    = 0x0200
	glLess     = 0x0201
	glEqual    = 0x0202
	glLEqual   = 0x0203
	glGreater  = 0x0204
	glNotEqual = 0x0205
	glGEqual   = 0x0206
	glAlways   = 0x0207
)

// Blend factors.
const (
	glZero                     = 0
	glOne                      = 1
	glSrcColor                 = 0x0300
	glOneMinusSrcColor         = 0x0301
	glSrcAlpha                 = 0x0302
	glOneMinusSrcAlpha         = 0x0303
	glDstAlpha                 = 0x0304
	glOneMinusDstAlpha         = 0x0305
	glDstColor                 = 0x0306
	glOneMinusDstColor         = 0x0307
	glSrcAlphaSaturate         = 0x0308
	glConstantColor            = 0x8001
	glOneMinusConstantColor    = 0x8002
	glConstantAlpha            = 0x8003
	glOneMinusConstantAlpha    = 0x8004
)

// Stencil ops.
const (
	glKeep     = 0x1E00
	glReplace  = 0x1E01
	glIncr     = 0x1E02
	glDecr     = 0x1E03
	glInvert   = 0x150A
	glIncrWrap = 0x8507
	glDecrWrap = 0x8508
)

// Matrix modes.
const (
	glModelview  = 0x1700
	glProjection = 0x1701
	glTextureMat = 0x1702
)

// Enable capabilities.
const (
	glCullFace      = 0x0B44
	glDepthTest     = 0x0B71
	glBlend         = 0x0BE2
	glTexture2D     = 0x0DE1
	glLighting      = 0x0B50
	glFogCap        = 0x0B60
	glNormalize     = 0x0BA1
	glColorMaterial = 0x0B57
	glAlphaTest     = 0x0BC0
	glScissorTest   = 0x0C11
	glStencilTest   = 0x0B90
	glLight0        = 0x4000
)

// Face / winding.
const (
	glFront        = 0x0404
	glBack         = 0x0405
	glFrontAndBack = 0x0408
	glCW           = 0x0900
	glCCW          = 0x0901
)

// Polygon mode.
const (
	glPoint = 0x1B00
	glLine  = 0x1B01
	glFill  = 0x1B02
)

// Shade model. glPhong is not a real GL value; MyTinyGL's extension.
const (
	glFlat  = 0x1D00
	glSmoothShade = 0x1D01
	glPhong = 0x1D02
)

// Texture environment.
const (
	glTextureEnvMode  = 0x2200
	glTextureEnvColor = 0x2201
	glTextureEnv      = 0x2300
	glModulate        = 0x2100
	glDecal           = 0x2101
	glTexEnvAdd       = 0x0104
)

// Fog.
const (
	glFogMode    = 0x0B65
	glFogDensity = 0x0B62
	glFogStart   = 0x0B63
	glFogEnd     = 0x0B64
	glFogColor   = 0x0B66
	glLinearFog  = 0x2601
	glExp        = 0x0800
	glExp2       = 0x0801
)

// Material and light parameter names.
const (
	glAmbient             = 0x1200
	glDiffuse             = 0x1201
	glSpecular            = 0x1202
	glPosition            = 0x1203
	glSpotDirection       = 0x1204
	glSpotExponent        = 0x1205
	glSpotCutoff          = 0x1206
	glConstantAttenuation = 0x1207
	glLinearAttenuation   = 0x1208
	glQuadraticAttenuation = 0x1209
	glEmission            = 0x1600
	glShininess           = 0x1601
	glAmbientAndDiffuse   = 0x1602
)

// Light model.
const (
	glLightModelAmbient   = 0x0B53
	glLightModelLocalViewer = 0x0B51
	glLightModelTwoSide   = 0x0B52
)

// Texture parameters.
const (
	glTextureMagFilter = 0x2800
	glTextureMinFilter = 0x2801
	glTextureWrapS     = 0x2802
	glTextureWrapT     = 0x2803
	glNearest                 = 0x2600
	glLinearFilter            = 0x2601
	glNearestMipmapNearest    = 0x2700
	glLinearMipmapNearest     = 0x2701
	glNearestMipmapLinear     = 0x2702
	glLinearMipmapLinear      = 0x2703
	glRepeat                  = 0x2901
	glClamp                   = 0x2900
	glClampToEdge             = 0x812F
)

// Pixel formats.
const (
	glRGBA           = 0x1908
	glRGB            = 0x1907
	glLuminance      = 0x1909
	glLuminanceAlpha = 0x190A
	glUnsignedByte   = 0x1401
)

// Vertex-array element types and client-state caps (glVertexPointer
// and family, glEnableClientState/glDisableClientState).
const (
	glFloat         = 0x1406
	glUnsignedShort = 0x1403
	glUnsignedInt   = 0x1405

	glVertexArray       = 0x8074
	glNormalArray       = 0x8075
	glColorArray        = 0x8076
	glTextureCoordArray = 0x8078
)

// Buffer targets and usage hints.
const (
	glArrayBuffer        = 0x8892
	glElementArrayBuffer = 0x8893
	glStaticDraw         = 0x88E4
	glStreamDraw         = 0x88E0
	glDynamicDraw        = 0x88E8
)

// Display-list modes.
const (
	glCompile           = 0x1300
	glCompileAndExecute = 0x1301
)

// Query strings.
const (
	glVendor     = 0x1F00
	glRenderer   = 0x1F01
	glVersion    = 0x1F02
	glExtensions = 0x1F03
)

// Hints.
const (
	glPerspectiveCorrectionHint = 0x0C50
	glFastest                   = 0x1101
	glNicest                    = 0x1102
	glDontCare                  = 0x1100
)
